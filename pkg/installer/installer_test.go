package installer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSkillDir(t *testing.T, root, id string) string {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte("# "+id+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skill.yaml"), []byte("id: "+id+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "example.png"), []byte("png"), 0o644))
	return dir
}

func TestDir(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		dir, err := Dir("claude", false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(".claude", "skills"), filepath.Clean(dir))
	})

	t.Run("global", func(t *testing.T) {
		dir, err := Dir("skillshare", true)
		require.NoError(t, err)
		home, err2 := os.UserHomeDir()
		require.NoError(t, err2)
		assert.Equal(t, filepath.Join(home, ".skillshare", "skills"), dir)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := Dir("vscode", false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown target")
	})
}

func TestTargetNames(t *testing.T) {
	assert.Equal(t, []string{"claude", "kodelet", "skillshare"}, TargetNames())
}

func TestInstall(t *testing.T) {
	src := makeSkillDir(t, t.TempDir(), "commit-messages")
	destRoot := filepath.Join(t.TempDir(), "skills")

	destDir, err := Install(src, destRoot, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destRoot, "commit-messages"), destDir)

	// Nested files come along
	assert.FileExists(t, filepath.Join(destDir, "SKILL.md"))
	assert.FileExists(t, filepath.Join(destDir, "skill.yaml"))
	assert.FileExists(t, filepath.Join(destDir, "images", "example.png"))
}

func TestInstallRefusesOverwrite(t *testing.T) {
	src := makeSkillDir(t, t.TempDir(), "commit-messages")
	destRoot := t.TempDir()

	_, err := Install(src, destRoot, false)
	require.NoError(t, err)

	_, err = Install(src, destRoot, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already installed")
}

func TestInstallForceReplaces(t *testing.T) {
	srcRoot := t.TempDir()
	src := makeSkillDir(t, srcRoot, "commit-messages")
	destRoot := t.TempDir()

	_, err := Install(src, destRoot, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(src, "SKILL.md"), []byte("# updated\n"), 0o644))

	destDir, err := Install(src, destRoot, true)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(destDir, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "# updated\n", string(content))
}

func TestInstallRejectsNonSkillDirectory(t *testing.T) {
	src := t.TempDir()

	_, err := Install(src, t.TempDir(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a skill directory")
}

func TestRemove(t *testing.T) {
	destRoot := t.TempDir()
	makeSkillDir(t, destRoot, "commit-messages")

	require.NoError(t, Remove(destRoot, "commit-messages"))
	assert.NoDirExists(t, filepath.Join(destRoot, "commit-messages"))
}

func TestRemoveNotInstalled(t *testing.T) {
	err := Remove(t.TempDir(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
