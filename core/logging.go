package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// maxLogSize is the size past which an existing log file is rotated on startup
const maxLogSize = 10 * 1024 * 1024

// SetupLogging builds the process logger
// Empty path discards all records; the terminal owns stdout so records never go there
// An existing file larger than maxLogSize is moved to path+".1" first
func SetupLogging(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return DiscardLogger(), nopCloser{}, nil
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, nil, fmt.Errorf("rotate log %s: %w", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
