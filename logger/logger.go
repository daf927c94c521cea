package logger

import (
	"io"
	"log/slog"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger replaces the package logger; the default discards everything
func SetLogger(l *slog.Logger) {
	log = l
}

// New returns a text logger writing to w. Debug records only pass in verbose mode.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}
