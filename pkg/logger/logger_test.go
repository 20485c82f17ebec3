package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	ctx := context.Background()

	entry := GetLogger(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, L.Logger, entry.Logger)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	base := logrus.NewEntry(logrus.New()).WithField("component", "lint")
	ctx := WithLogger(context.Background(), base)

	entry := G(ctx)
	require.NotNil(t, entry)
	assert.Equal(t, "lint", entry.Data["component"])
}

func TestSetLogLevel(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		require.NoError(t, SetLogLevel("debug"))
		assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())
		require.NoError(t, SetLogLevel("info"))
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, SetLogLevel("not-a-level"))
	})
}

func TestSetLogFormat(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(logrus.New().Out)

	SetLogFormat("json")
	L.Info("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)

	SetLogFormat("fmt")
}
