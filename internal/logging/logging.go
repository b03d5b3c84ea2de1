// Package logging configures the process-wide structured logger.
//
// The TUI owns stdout and stderr while it runs, so log records go to a file
// when verbose logging is enabled and are discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.DiscardHandler)
	closer io.Closer
)

// Logger returns the current logger
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return Logger().With(kv...)
}

// Setup points the logger at path as JSON records. An empty path or
// verbose=false keeps logging disabled.
func Setup(verbose bool, path string) error {
	if !verbose || path == "" {
		SetOutput(nil)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	closer = f
	return nil
}

// SetOutput routes records to w, or discards them when w is nil.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if w == nil {
		logger = slog.New(slog.DiscardHandler)
		return
	}
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Close releases the log file, if any
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = slog.New(slog.DiscardHandler)
}

func closeLocked() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}
