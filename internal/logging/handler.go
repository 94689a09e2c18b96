package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// timeLayout is the timestamp prefix on every text line.
const timeLayout = "15:04:05"

// Handler renders records as single text lines for terminals:
//
//	15:04:05 INFO  scanned vault notes=42 path=/tmp/vault
//
// Color is applied per level when the writer is a color-capable TTY.
// Group names become dotted attribute-key prefixes.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	color  bool
	prefix string      // accumulated group prefix, "a.b."
	attrs  []slog.Attr // bound by WithAttrs, keys already prefixed
}

// NewHandler returns a text handler writing to out. A nil opts logs
// at Info and above.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out:   out,
		mu:    &sync.Mutex{},
		color: SupportsColor(out),
	}
	if opts != nil {
		h.opts = *opts
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

// Handle formats the record into one line and writes it with a single
// Write call, so concurrent loggers cannot interleave fragments.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(h.paint(r.Time.Format(timeLayout), color.FgHiBlack))
		b.WriteByte(' ')
	}
	b.WriteString(h.paintLevel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&b, a, "")
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, a, h.prefix)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) writeAttr(b *strings.Builder, a slog.Attr, prefix string) {
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(b, ga, prefix+a.Key+".")
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(h.paint(prefix+a.Key, color.FgCyan))
	b.WriteByte('=')
	fmt.Fprintf(b, "%v", a.Value.Any())
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

// paint wraps s in ANSI color codes when the handler writes to a
// color-capable terminal.
func (h *Handler) paint(s string, attrs ...color.Attribute) string {
	if !h.color {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

// paintLevel renders the level label padded before coloring, so the
// escape codes do not disturb column alignment.
func (h *Handler) paintLevel(l slog.Level) string {
	label := fmt.Sprintf("%-5s", levelLabel(l))
	switch {
	case l >= slog.LevelError:
		return h.paint(label, color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return h.paint(label, color.FgYellow)
	case l >= slog.LevelInfo:
		return h.paint(label, color.FgGreen)
	default:
		return h.paint(label, color.FgMagenta)
	}
}

func levelLabel(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN"
	case l >= slog.LevelInfo:
		return "INFO"
	case l >= slog.LevelDebug:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
