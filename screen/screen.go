// Package screen adapts a tcell.Screen to the main loop's surface contract.
//
// tcell switches to the alternate screen and raw mode together in Init and
// undoes both in Fini, so EnterAlternateScreen initializes and
// LeaveAlternateScreen finalizes; the raw mode steps do nothing. tcell always
// drives the process's own terminal, so output cannot go to a file.
package screen

import (
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pipeview/terminal"
)

// ErrClosed is returned by PollEvent once the screen has been finalized
var ErrClosed = errors.New("screen closed")

// Surface wraps a tcell.Screen
type Surface struct {
	screen tcell.Screen

	mu         sync.Mutex
	started    bool
	finished   bool
	hideCursor bool

	// Closed when Init has run; PollEvent waits on it
	ready     chan struct{}
	readyOnce sync.Once
}

// New wraps s; s must not be initialized yet
func New(s tcell.Screen) *Surface {
	return &Surface{
		screen: s,
		ready:  make(chan struct{}),
	}
}

// Open creates a surface over the process terminal
func Open() (*Surface, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// HideCursor hides the cursor, deferred until the screen is initialized
func (s *Surface) HideCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hideCursor = true
	if s.started && !s.finished {
		s.screen.HideCursor()
	}
	return nil
}

// EnterAlternateScreen initializes tcell, which also enters raw mode
func (s *Surface) EnterAlternateScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.started = true
	if s.hideCursor {
		s.screen.HideCursor()
	}
	s.screen.Clear()
	s.readyOnce.Do(func() { close(s.ready) })
	return nil
}

// EnableRawMode is a no-op: Init already entered raw mode
func (s *Surface) EnableRawMode() error { return nil }

// DisableRawMode is a no-op: Fini leaves raw mode
func (s *Surface) DisableRawMode() error { return nil }

// LeaveAlternateScreen finalizes tcell
func (s *Surface) LeaveAlternateScreen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fini()
	return nil
}

// ShowCursor is a no-op after Fini, which restores the cursor
func (s *Surface) ShowCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hideCursor = false
	return nil
}

// fini runs Fini once; callers hold mu
func (s *Surface) fini() {
	if s.started && !s.finished {
		s.screen.Fini()
		s.finished = true
	}
}

// Restore finalizes the screen if it is still up; safe from any goroutine
func (s *Surface) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fini()
}

// Size returns current screen dimensions
func (s *Surface) Size() (int, int) {
	return s.screen.Size()
}

// Flush copies the frame into tcell and shows it
func (s *Surface) Flush(cells []terminal.Cell, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.finished || len(cells) < width*height {
		return nil
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			if c.Rune == terminal.WideTail {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.screen.SetContent(x, y, r, nil, convertStyle(c))
		}
	}
	s.screen.Show()
	return nil
}

// PollEvent blocks until the next event tcell reports
// Events without a terminal equivalent are skipped
func (s *Surface) PollEvent() (terminal.Event, error) {
	<-s.ready

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return terminal.Event{}, ErrClosed
		}
		if out, ok := convertEvent(ev); ok {
			return out, nil
		}
	}
}
