package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoAndRef(t *testing.T) {
	tests := []struct {
		source string
		repo   string
		ref    string
	}{
		{"getskill/skills", "getskill/skills", ""},
		{"getskill/skills@v0.1.0", "getskill/skills", "v0.1.0"},
		{"getskill/skills@main", "getskill/skills", "main"},
	}

	for _, tt := range tests {
		repo, ref := ParseRepoAndRef(tt.source)
		assert.Equal(t, tt.repo, repo)
		assert.Equal(t, tt.ref, ref)
	}
}

func TestFindSkillDirs(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{
		"skills/commit-messages",
		"skills/landing-page",
		".git/objects",
		"node_modules/pkg",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "skills/commit-messages/SKILL.md"), []byte("# a\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skills/landing-page/SKILL.md"), []byte("# b\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git/objects/SKILL.md"), []byte("# nope\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules/pkg/SKILL.md"), []byte("# nope\n"), 0o644))

	dirs, err := FindSkillDirs(root)
	require.NoError(t, err)

	require.Len(t, dirs, 2)
	assert.Contains(t, dirs, filepath.Join(root, "skills/commit-messages"))
	assert.Contains(t, dirs, filepath.Join(root, "skills/landing-page"))
}

func TestFetchSkill(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/skills/commit-messages/SKILL.md":
			w.Write([]byte("# Commit Messages\n"))
		case "/skills/commit-messages/skill.yaml":
			w.Write([]byte("id: commit-messages\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	destDir := filepath.Join(t.TempDir(), "commit-messages")
	fetcher := NewHTTPFetcher()

	err := fetcher.FetchSkill(context.Background(), server.URL+"/skills/commit-messages", destDir)
	require.NoError(t, err)

	doc, err := os.ReadFile(filepath.Join(destDir, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Commit Messages\n", string(doc))

	metadata, err := os.ReadFile(filepath.Join(destDir, "skill.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "id: commit-messages\n", string(metadata))
}

func TestFetchSkillRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("content\n"))
	}))
	defer server.Close()

	destDir := t.TempDir()
	fetcher := NewHTTPFetcher(WithAttempts(3))

	err := fetcher.FetchSkill(context.Background(), server.URL+"/skill", destDir)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hits.Load(), int32(3))
}

func TestFetchSkillNotFoundDoesNotRetry(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(WithAttempts(5))

	err := fetcher.FetchSkill(context.Background(), server.URL+"/skill", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Equal(t, int32(1), hits.Load())
}
