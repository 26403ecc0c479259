// Package logging sets up the local failure log. Gateway and session errors
// are recorded here before being surfaced as transient notices; nothing is
// ever reported remotely.
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 2
	maxAgeDays = 28
)

// NewFileLogger returns a slog logger writing JSON lines to a size-rotated
// file at path.
func NewFileLogger(path string, level slog.Level) *slog.Logger {
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger is used by tests and by commands that opt out of local
// logging.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
