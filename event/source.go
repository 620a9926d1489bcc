// Package event runs the terminal event source goroutine.
package event

import (
	"context"
	"log/slog"

	"github.com/lixenwraith/pipeview/core"
	"github.com/lixenwraith/pipeview/queue"
	"github.com/lixenwraith/pipeview/terminal"
)

// Poller blocks until the next terminal event
// Implemented by terminal.Terminal and screen.Surface
type Poller interface {
	PollEvent() (terminal.Event, error)
}

type sourceConfig struct {
	fatal  func(error)
	logger *slog.Logger
}

// Option configures Spawn
type Option func(*sourceConfig)

// WithFatal replaces the process-ending handler for poll errors
func WithFatal(fn func(error)) Option {
	return func(c *sourceConfig) {
		c.fatal = fn
	}
}

// WithLogger sets the logger that traces each forwarded event
func WithLogger(l *slog.Logger) Option {
	return func(c *sourceConfig) {
		c.logger = l
	}
}

// Spawn starts the event source goroutine
// Every event is forwarded unmodified; the first poll error goes to the fatal handler
// There is no retry and the goroutine is never joined
func Spawn(p Poller, out *queue.Queue[terminal.Event], opts ...Option) {
	cfg := sourceConfig{
		fatal:  core.Fatal,
		logger: core.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	core.Go(func() {
		for {
			ev, err := p.PollEvent()
			if err != nil {
				cfg.fatal(err)
				return
			}
			if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
				cfg.logger.Debug("terminal event", "event", ev.String())
			}
			out.Push(ev)
		}
	})
}
