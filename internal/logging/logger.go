// Package logging writes timestamped diagnostics to a file so full-screen
// sessions are never disturbed by stderr output.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Logger is a *log.Logger bound to an append-only file.
type Logger struct {
	*log.Logger
	file *os.File
}

// Open creates (or appends to) the log file at path.
func Open(path, prefix string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{Logger: log.New(f, prefix, log.LstdFlags), file: f}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard, "", 0)}
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
