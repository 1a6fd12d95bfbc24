package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger keeps printf-style helpers on top of a slog.Logger. Output goes to
// stderr so stdout stays clean for lookup results.
type Logger struct {
	*slog.Logger
}

// NewLogger builds a text or json handler; debug lowers the level to debug.
func NewLogger(debug bool, format string) *Logger {
	return newLogger(os.Stderr, debug, format)
}

func newLogger(w io.Writer, debug bool, format string) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Logger.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.Logger.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.Logger.Error(fmt.Sprintf(format, args...))
}
