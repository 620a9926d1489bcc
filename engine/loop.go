package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lixenwraith/pipeview/core"
	"github.com/lixenwraith/pipeview/queue"
	"github.com/lixenwraith/pipeview/terminal"
)

// Loop is the main loop: it owns the surface and the buffer and multiplexes both queues
// Thread-Safety: Run and State belong to one goroutine
type Loop struct {
	surface Surface
	records *queue.Queue[string]
	events  *queue.Queue[terminal.Event]
	buf     *Buffer
	draw    DrawFunc
	logger  *slog.Logger

	state  State
	frames uint64
	cells  []terminal.Cell
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithLogger traces state transitions and counters at debug level
func WithLogger(l *slog.Logger) LoopOption {
	return func(lp *Loop) {
		lp.logger = l
	}
}

// NewLoop wires a loop; nothing touches the surface until Run
func NewLoop(surface Surface, records *queue.Queue[string], events *queue.Queue[terminal.Event],
	buf *Buffer, draw DrawFunc, opts ...LoopOption) *Loop {
	l := &Loop{
		surface: surface,
		records: records,
		events:  events,
		buf:     buf,
		draw:    draw,
		logger:  core.DiscardLogger(),
		state:   StateInitializing,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle stage
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of frames drawn
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) setState(s State) {
	l.logger.Debug("loop state", "from", l.state.String(), "to", s.String())
	l.state = s
}

// Run drives the loop until the cancellation chord or a surface error
// A failed initialization returns at once and leaves the loop in StateInitializing
// Once running, finalization always runs; its errors are joined with the running error
func (l *Loop) Run() error {
	if err := l.initialize(); err != nil {
		return err
	}

	l.setState(StateRunning)
	runErr := l.run()

	l.setState(StateFinalizing)
	finErr := l.finalize()

	l.setState(StateTerminated)
	l.logger.Debug("loop done", "frames", l.frames, "records", l.buf.Seq())

	return errors.Join(runErr, finErr)
}

// initialize enters the terminal, stopping at the first failing step
func (l *Loop) initialize() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"hide cursor", l.surface.HideCursor},
		{"enter alternate screen", l.surface.EnterAlternateScreen},
		{"enable raw mode", l.surface.EnableRawMode},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("initialize: %s: %w", s.name, err)
		}
	}
	return nil
}

// finalize restores the terminal, attempting every step
func (l *Loop) finalize() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"disable raw mode", l.surface.DisableRawMode},
		{"leave alternate screen", l.surface.LeaveAlternateScreen},
		{"show cursor", l.surface.ShowCursor},
	}
	var errs []error
	for _, s := range steps {
		if err := s.fn(); err != nil {
			errs = append(errs, fmt.Errorf("finalize: %s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

// run draws, then handles exactly one message per iteration
// select picks at random when both queues are ready
func (l *Loop) run() error {
	for {
		if err := l.drawFrame(); err != nil {
			return err
		}

		select {
		case <-l.records.Ready():
			if rec, ok := l.records.Pop(); ok {
				l.buf.Set(rec)
			}
		case <-l.events.Ready():
			if ev, ok := l.events.Pop(); ok && IsCancel(ev) {
				l.logger.Debug("cancel requested")
				return nil
			}
		}
	}
}

// drawFrame renders one frame into a blank buffer and flushes it
func (l *Loop) drawFrame() error {
	w, h := l.surface.Size()
	w, h = max(w, 0), max(h, 0)

	if size := w * h; cap(l.cells) < size {
		l.cells = make([]terminal.Cell, size)
	} else {
		l.cells = l.cells[:size]
		clear(l.cells)
	}

	f := &Frame{Width: w, Height: h, Number: l.frames, cells: l.cells}
	l.draw(f)
	l.frames++

	if err := l.surface.Flush(l.cells, w, h); err != nil {
		return fmt.Errorf("draw frame %d: %w", f.Number, err)
	}
	return nil
}
