package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, out, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "Failed to load skill")
		assert.Empty(t, out.String())
		assert.Equal(t, "[ERROR] Failed to load skill: boom\n", errOut.String())
	})

	t.Run("without context", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "")
		assert.Equal(t, "[ERROR] boom\n", errOut.String())
	})

	t.Run("nil error is a no-op", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(nil, "context")
		assert.Empty(t, errOut.String())
	})
}

func TestQuietModeSuppressesOutput(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)

	p.Success("installed")
	p.Warning("duplicate tag")
	p.Info("3 skills found")
	p.Section("Skills")
	p.Separator()
	assert.Empty(t, out.String())

	// Errors are never suppressed
	p.Error(errors.New("boom"), "")
	assert.NotEmpty(t, errOut.String())
	assert.True(t, p.IsQuiet())
}

func TestMessageFormatting(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("installed skill 'commit-messages'")
	p.Warning("tag 'web' only appears once")
	p.Info("done")

	assert.Contains(t, out.String(), "installed skill 'commit-messages'\n")
	assert.Contains(t, out.String(), "[WARNING] tag 'web' only appears once\n")
	assert.Contains(t, out.String(), "done\n")
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.Section("Lint")
	assert.Equal(t, "Lint\n----\n", out.String())
}
