package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromBaseURL(t *testing.T) {
	t.Run("plain directory URL", func(t *testing.T) {
		id, err := idFromBaseURL("https://raw.githubusercontent.com/getskill/skills/main/skills/commit-messages")
		require.NoError(t, err)
		assert.Equal(t, "commit-messages", id)
	})

	t.Run("trailing slash", func(t *testing.T) {
		id, err := idFromBaseURL("https://example.com/skills/landing-page/")
		require.NoError(t, err)
		assert.Equal(t, "landing-page", id)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		_, err := idFromBaseURL("ftp://example.com/skills/x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported scheme")
	})

	t.Run("no path", func(t *testing.T) {
		_, err := idFromBaseURL("https://example.com")
		require.Error(t, err)
	})
}

func TestGetAddConfigFromFlags(t *testing.T) {
	cmd := addCmd
	require.NoError(t, cmd.Flags().Set("global", "true"))
	require.NoError(t, cmd.Flags().Set("dir", "skills/commit-messages"))
	defer func() {
		cmd.Flags().Set("global", "false")
		cmd.Flags().Set("dir", "")
	}()

	config := getAddConfigFromFlags(cmd)
	assert.True(t, config.Global)
	assert.Equal(t, "skills/commit-messages", config.Dir)
	assert.False(t, config.URL)
}
