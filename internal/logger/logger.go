// Package logger configures the structured log that chime writes to a rotated
// file in its data directory.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/chime/internal/apperr"
)

var errUnknownLevel = &apperr.Error{
	Message: "unknown log level: %s",
}

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// ParseLevel converts a level name from the config file.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level

	err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	if err != nil {
		return slog.LevelInfo, errUnknownLevel.Fmt(s)
	}

	return l, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init installs a logger that writes to a size-rotated file at path as the
// default slog logger. The returned closer flushes and closes the file.
func Init(path, level string) (io.Closer, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, l))

	return w, nil
}
