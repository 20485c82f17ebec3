// Package installer copies skill directories into the configuration
// directories of consuming tools. Install paths vary by tool; the
// package maintains the known target layouts and performs the copy,
// leaving the source collection untouched.
package installer

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/skill"
)

// Target describes a consuming tool's skill directory layout
type Target struct {
	Name      string
	LocalDir  string // project-local install path
	GlobalDir string // path under the user home directory
}

var targets = map[string]Target{
	"skillshare": {Name: "skillshare", LocalDir: ".skillshare/skills", GlobalDir: ".skillshare/skills"},
	"claude":     {Name: "claude", LocalDir: ".claude/skills", GlobalDir: ".claude/skills"},
	"kodelet":    {Name: "kodelet", LocalDir: ".kodelet/skills", GlobalDir: ".kodelet/skills"},
}

// DefaultTarget is used when no target tool is specified
const DefaultTarget = "skillshare"

// TargetNames returns the sorted names of all known targets
func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dir resolves the skills directory for a target tool. Global resolves
// under the user home directory, otherwise the path is project-local.
func Dir(target string, global bool) (string, error) {
	tool, ok := targets[target]
	if !ok {
		return "", errors.Errorf("unknown target '%s' (known targets: %v)", target, TargetNames())
	}

	if global {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to get user home directory")
		}
		return filepath.Join(homeDir, tool.GlobalDir), nil
	}

	return tool.LocalDir, nil
}

// Install copies a skill directory into destRoot, named after its
// directory basename. An existing installation is refused unless force
// is set. Returns the destination path.
func Install(srcDir, destRoot string, force bool) (string, error) {
	if _, err := os.Stat(filepath.Join(srcDir, skill.DocumentFileName)); err != nil {
		return "", errors.Wrapf(err, "'%s' is not a skill directory", srcDir)
	}

	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create %s", destRoot)
	}

	destDir := filepath.Join(destRoot, filepath.Base(srcDir))
	if _, err := os.Stat(destDir); err == nil {
		if !force {
			return "", errors.Errorf("skill already installed at %s", destDir)
		}
		if err := os.RemoveAll(destDir); err != nil {
			return "", errors.Wrapf(err, "failed to replace %s", destDir)
		}
	}

	if err := copyDir(srcDir, destDir); err != nil {
		return "", errors.Wrapf(err, "failed to copy skill to %s", destDir)
	}

	return destDir, nil
}

// Remove deletes an installed skill directory by id. The directory must
// look like a skill (contain a SKILL.md) before it is removed.
func Remove(destRoot, id string) error {
	skillDir := filepath.Join(destRoot, id)

	if _, err := os.Stat(filepath.Join(skillDir, skill.DocumentFileName)); os.IsNotExist(err) {
		return errors.Errorf("skill '%s' not found in %s", id, destRoot)
	}

	return os.RemoveAll(skillDir)
}

// copyDir recursively copies a directory tree preserving file modes
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
