package record

import (
	"errors"
	"io"
	"log/slog"

	"github.com/lixenwraith/pipeview/core"
	"github.com/lixenwraith/pipeview/queue"
)

type spawnConfig struct {
	fatal  func(error)
	logger *slog.Logger
}

// Option configures Spawn
type Option func(*spawnConfig)

// WithFatal replaces the process-ending handler for read and decode errors
func WithFatal(fn func(error)) Option {
	return func(c *spawnConfig) {
		c.fatal = fn
	}
}

// WithLogger sets the logger for stream progress
func WithLogger(l *slog.Logger) Option {
	return func(c *spawnConfig) {
		c.logger = l
	}
}

// Spawn starts the reader goroutine feeding out
// End of input stops the goroutine quietly; any other error goes to the fatal handler
// The goroutine is never joined
func Spawn(src io.Reader, delim byte, out *queue.Queue[string], opts ...Option) {
	cfg := spawnConfig{
		fatal:  core.Fatal,
		logger: core.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := NewReader(src, delim)
	core.Go(func() {
		count := 0
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				cfg.logger.Debug("input ended", "records", count, "bytes", r.Offset())
				return
			}
			if err != nil {
				cfg.fatal(err)
				return
			}
			count++
			out.Push(rec)
		}
	})
}
