package logging

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(level slog.Level, msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC), level, msg, 0)
	r.AddAttrs(attrs...)
	return r
}

func TestHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	r := record(slog.LevelInfo, "scanned vault",
		slog.Int("notes", 42), slog.String("path", "/tmp/vault"))
	require.NoError(t, h.Handle(t.Context(), r))

	assert.Equal(t, "15:04:05 INFO  scanned vault notes=42 path=/tmp/vault\n", buf.String())
}

func TestHandlerZeroTimeOmitted(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelWarn, "vault missing", 0)
	require.NoError(t, h.Handle(t.Context(), r))

	assert.Equal(t, "WARN  vault missing\n", buf.String())
}

func TestHandlerLevelLabels(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO "},
		{slog.LevelWarn, "WARN "},
		{slog.LevelError, "ERROR"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		h := NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})
		require.NoError(t, h.Handle(t.Context(), record(tt.level, "m")))
		assert.Equal(t, "15:04:05 "+tt.want+" m\n", buf.String(), "level %v", tt.level)
	}
}

func TestHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer

	// nil opts gate at Info
	h := NewHandler(&buf, nil)
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))

	h = NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestHandlerWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := slog.New(h).With("vault", "/v").WithGroup("note").With("rel", "a.md")
	logger.Info("saved", "bytes", 10)

	out := buf.String()
	assert.Contains(t, out, "vault=/v")
	assert.Contains(t, out, "note.rel=a.md")
	assert.Contains(t, out, "note.bytes=10")
}

func TestHandlerInlineGroupAttr(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := record(slog.LevelInfo, "m", slog.Group("scan", slog.Int("issues", 2)))
	require.NoError(t, h.Handle(t.Context(), r))

	assert.Contains(t, buf.String(), "scan.issues=2")
}
