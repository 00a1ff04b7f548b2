// Package logging builds the slog loggers used across the engine, CLI and
// server, with render-oriented attribute conventions applied in one place.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// New creates the application logger.
// It writes to Stderr so rendered markup on Stdout stays pipeable.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger targeting w, applying the engine's
// attribute conventions. Used directly in tests and by hosts that collect
// logs somewhere other than Stderr.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: rewriteAttr,
	}))
}

// rewriteAttr standardizes the keys and shapes render events produce:
// the "error" key becomes "err", and durations (render timings are
// sub-second) log as their textual form instead of a nanosecond integer.
func rewriteAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	if d, ok := a.Value.Any().(time.Duration); ok {
		a.Value = slog.StringValue(d.String())
	}
	return a
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
