// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/symex/internal/core/ports"
)

// messager describes an error that can report its own message without
// the chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog. Console output goes
// through the pretty handler; when a diagnostic file writer is attached
// every record is additionally appended there in text form.
type Logger struct {
	mu      sync.RWMutex
	console *slog.Logger
	file    *slog.Logger
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{console: slog.New(handler)}
}

// AttachFile tees all records to the given writer, typically the
// process-lifetime diagnostic log file.
func (l *Logger) AttachFile(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetOutput updates the console output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.console = slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.console.Info(msg, args...)
	if l.file != nil {
		l.file.Info(msg, args...)
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.console.Warn(msg, args...)
	if l.file != nil {
		l.file.Warn(msg, args...)
	}
}

// Error logs an error message. zerr errors log their own message with
// the cause chain flattened into a single record.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if err == nil {
		return
	}

	msg := "operation failed"
	if m, ok := err.(messager); ok {
		msg = m.Message()
	}
	l.console.Error(msg, "error", err)
	if l.file != nil {
		l.file.Error(msg, "error", err)
	}
}

var _ ports.Logger = (*Logger)(nil)
