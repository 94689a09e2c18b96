package logging

import (
	"log/slog"
	"strings"
	"testing"
)

// Format selects the wire shape of log output.
type Format string

const (
	// FormatText is the single-line terminal format of [Handler].
	FormatText Format = "text"
	// FormatJSON is machine-readable slog JSON.
	FormatJSON Format = "json"
)

// LevelTrace sits below slog.LevelDebug. Per-note scan chatter logs
// here so it stays out of a normal debug session.
const LevelTrace = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a level: 0 warns only,
// 1 adds info, 2 adds debug, 3 and above trace.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// ForTest returns a logger that routes through t.Log, so its output
// shows up only for failed or verbose test runs. The level is Trace;
// nothing is filtered.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(NewHandler(testWriter{t}, &slog.HandlerOptions{Level: LevelTrace}))
}

// testWriter adapts testing.T to io.Writer. t.Log appends its own
// newline, so the handler's trailing one is dropped.
type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
