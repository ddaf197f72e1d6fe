package simlog

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger wraps a *slog.Logger with a switchable level and hierarchical
// rendering of error chains.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a Logger with a pretty handler writing to w.
// A nil writer defaults to os.Stderr.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	return &Logger{
		logger: slog.New(NewPrettyHandler(w, level)),
		level:  level,
	}
}

// Slog returns the underlying structured logger, for injection into the
// engine packages.
func (l *Logger) Slog() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

// SetLevel changes the minimum level handled.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.Slog().Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.Slog().Warn(msg, args...)
}

// Error renders err hierarchically: the outermost message first, then each
// cause in the chain under a "Caused by:" header. zerr errors contribute
// their own message without repeating the chain; a plain error ends the
// traversal with its full text.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+msg)
		default:
			lines = append(lines, "    → "+msg)
		}
	}
	l.Slog().Error(strings.Join(lines, "\n"))
}
