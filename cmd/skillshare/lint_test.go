package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLintConfigFromFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := getLintConfigFromFlags(lintCmd, nil)
		assert.Equal(t, "./skills", config.Root)
		assert.Equal(t, "text", config.Format)
		assert.False(t, config.Strict)
		assert.False(t, config.Watch)
	})

	t.Run("positional root wins", func(t *testing.T) {
		config := getLintConfigFromFlags(lintCmd, []string{"/tmp/collection"})
		assert.Equal(t, "/tmp/collection", config.Root)
	})

	t.Run("flags", func(t *testing.T) {
		require.NoError(t, lintCmd.Flags().Set("strict", "true"))
		require.NoError(t, lintCmd.Flags().Set("format", "json"))
		defer func() {
			lintCmd.Flags().Set("strict", "false")
			lintCmd.Flags().Set("format", "text")
		}()

		config := getLintConfigFromFlags(lintCmd, nil)
		assert.True(t, config.Strict)
		assert.Equal(t, "json", config.Format)
	})
}
