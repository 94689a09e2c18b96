package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestLevelTraceBelowDebug(t *testing.T) {
	assert.Less(t, LevelTrace, slog.LevelDebug)
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), LevelTrace))

	// output goes through t.Log, so this must not panic or write to stderr
	logger.Debug("indexing vault", "notes", 3)
}

func TestMultiHandlerFanOut(t *testing.T) {
	var verbose, quiet bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		NewHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	logger := slog.New(h)
	logger.Debug("resolving vault")
	logger.Warn("missing frontmatter", "note", "a.md")

	assert.Contains(t, verbose.String(), "resolving vault")
	assert.Contains(t, verbose.String(), "missing frontmatter")
	assert.NotContains(t, quiet.String(), "resolving vault")
	assert.Contains(t, quiet.String(), "note=a.md")
}

func TestMultiHandlerEnabled(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	// enabled when any child is
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var a, b bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	slog.New(h).With("vault", "/v").Info("listed notes")

	assert.Contains(t, a.String(), "vault=/v")
	assert.Contains(t, b.String(), "vault=/v")
}
