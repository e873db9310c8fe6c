// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog] that
// writes human-readable, optionally colored, output with [tint].
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Options configures a [Logger] returned by [New].
type Options struct {
	// Level is the initial minimum level. It defaults to slog.LevelInfo.
	Level slog.Level
	// Color enables ANSI colors in the output.
	Color bool
	// Time keeps the timestamp of each record. Command-line tools usually
	// don't want it.
	Time bool
}

// Logger encapsulates an [slog.Logger] together with the [slog.LevelVar]
// controlling its handler, so the level can be changed after construction
// (for example, by a -v flag).
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// New creates a new Logger that writes to w.
func New(w io.Writer, opts Options) *Logger {
	level := new(slog.LevelVar)
	level.Set(opts.Level)
	return &Logger{
		Logger: slog.New(newHandler(w, level, opts)),
		Level:  level,
	}
}

func newHandler(w io.Writer, level slog.Leveler, opts Options) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !opts.Color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !opts.Time && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
}

var defaultLogger = New(io.Discard, Options{})

// Put returns a new context with the provided [Logger].
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context.
//
// If the context has no [Logger], it returns a default [Logger] that discards all
// messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// IsDefault returns true if l is the default [Logger].
func IsDefault(l *Logger) bool { return l == defaultLogger }

// LevelVar retrieves the [slog.LevelVar] associated with the [Logger] in the context.
func LevelVar(ctx context.Context) *slog.LevelVar { return Get(ctx).Level }

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
