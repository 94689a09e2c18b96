// Package logging is the slog setup for mdnote: a colorized
// single-line text handler for terminals, a fan-out handler for
// writing to the terminal and a JSON log file at once, the mapping
// from -v flag counts to levels, and context plumbing so commands can
// reach the logger configured at startup.
//
//	logger := slog.New(logging.NewHandler(os.Stderr, nil))
//	logger.Info("scanned vault", "notes", 42)
//
// In tests, [ForTest] routes log lines through t.Log so they surface
// only on failure or with -v.
package logging
