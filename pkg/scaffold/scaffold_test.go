package scaffold

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getskill/skillshare/pkg/lint"
	"github.com/getskill/skillshare/pkg/skill"
)

func TestCreate(t *testing.T) {
	root := t.TempDir()

	p := NewParams("commit-messages")
	p.Author = "getskill"
	p.Tags = []string{"git", "workflow"}

	dir, err := Create(root, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "commit-messages"), dir)

	s, err := skill.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "commit-messages", s.ID)
	assert.Equal(t, "Commit Messages", s.Name)
	assert.Equal(t, "0.1.0", s.Version)
	assert.Equal(t, "getskill", s.Author)
	assert.Equal(t, []string{"git", "workflow"}, s.Tags)
	assert.Contains(t, s.Content, "## Trigger")
	assert.Contains(t, s.Content, "## Success Criteria")
}

func TestCreateWithoutTags(t *testing.T) {
	dir, err := Create(t.TempDir(), NewParams("landing-page"))
	require.NoError(t, err)

	s, err := skill.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Tags)
}

func TestCreateRefusesExistingDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := Create(root, NewParams("dupe"))
	require.NoError(t, err)

	_, err = Create(root, NewParams("dupe"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateRequiresID(t *testing.T) {
	_, err := Create(t.TempDir(), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

// A freshly scaffolded skill passes the linter's hard rules
func TestScaffoldedSkillLints(t *testing.T) {
	root := t.TempDir()
	_, err := Create(root, NewParams("fresh-skill"))
	require.NoError(t, err)

	result, err := lint.New(root).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
}

func TestTitleFromID(t *testing.T) {
	assert.Equal(t, "Commit Messages", titleFromID("commit-messages"))
	assert.Equal(t, "Api", titleFromID("api"))
}
