// Package logger holds the structured logger shared by the allocation
// engine and the container. It discards all output until Set or Init is
// called.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var l atomic.Pointer[slog.Logger]

func init() {
	l.Store(discard())
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Options configures Init.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Output  io.Writer  // Destination. Default: os.Stderr
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
	JSON    bool       // Emit JSON instead of logfmt-style text
}

// Init builds a handler from opts and installs it.
func Init(opts Options) {
	if !opts.Enabled {
		l.Store(discard())
		return
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: opts.Level}
	var h slog.Handler
	if opts.JSON {
		h = slog.NewJSONHandler(out, hopts)
	} else {
		h = slog.NewTextHandler(out, hopts)
	}
	l.Store(slog.New(h))
}

// Set installs lg. A nil logger restores the discarding default.
func Set(lg *slog.Logger) {
	if lg == nil {
		lg = discard()
	}
	l.Store(lg)
}

// L returns the current logger.
func L() *slog.Logger { return l.Load() }

// Enabled reports whether level would be emitted. Hot paths check this
// before building attributes.
func Enabled(level slog.Level) bool {
	return l.Load().Enabled(context.Background(), level)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { l.Load().Debug(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { l.Load().Warn(msg, args...) }
