// Package fetch retrieves skills from outside the local collection:
// whole repositories cloned through the gh CLI, or individual skill
// directories pulled as raw files over plain HTTP. There is no registry
// protocol; both paths end in files on local disk.
package fetch

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/getskill/skillshare/pkg/logger"
	"github.com/getskill/skillshare/pkg/skill"
)

// ParseRepoAndRef splits an "org/repo@ref" source into repo and ref.
// The ref is empty when none is given.
func ParseRepoAndRef(source string) (string, string) {
	if idx := strings.LastIndex(source, "@"); idx != -1 {
		return source[:idx], source[idx+1:]
	}
	return source, ""
}

// IsGhInstalled reports whether the gh CLI is on PATH
func IsGhInstalled() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// IsGhAuthenticated reports whether the gh CLI has a usable login
func IsGhAuthenticated() bool {
	return exec.Command("gh", "auth", "status").Run() == nil
}

// CloneRepo clones a GitHub repository into a temporary directory using
// the gh CLI, optionally at a specific tag, branch, or sha. The cleanup
// function removes the clone.
func CloneRepo(ctx context.Context, source string) (string, func(), error) {
	repo, ref := ParseRepoAndRef(source)

	tmpDir, err := os.MkdirTemp("", "skillshare-fetch-*")
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create temporary directory")
	}
	cleanup := func() { os.RemoveAll(tmpDir) }

	cloneArgs := []string{"repo", "clone", repo, tmpDir}
	if ref != "" {
		cloneArgs = append(cloneArgs, "--", "--branch", ref, "--single-branch")
	}

	logger.G(ctx).WithField("repo", repo).WithField("ref", ref).Debug("Cloning repository")

	cmd := exec.CommandContext(ctx, "gh", cloneArgs...)
	if output, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		return "", nil, errors.Wrapf(err, "failed to clone %s: %s", repo, string(output))
	}

	return tmpDir, cleanup, nil
}

// FindSkillDirs walks a tree and returns every directory containing a
// SKILL.md, skipping VCS and dependency directories
func FindSkillDirs(root string) ([]string, error) {
	var skillDirs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && (info.Name() == ".git" || info.Name() == "node_modules") {
			return filepath.SkipDir
		}

		if !info.IsDir() && info.Name() == skill.DocumentFileName {
			skillDirs = append(skillDirs, filepath.Dir(path))
		}

		return nil
	})

	return skillDirs, err
}
