package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
)

// readTimeoutMs bounds one backend read so a lone ESC and resize signals are noticed
const readTimeoutMs = 100

// Terminal drives the controlling tty: lifecycle steps, diffed frame output and input events
// Output goes to the sink given to Open, input and sizing come from the tty
type Terminal struct {
	backend Backend
	output  *outputBuffer

	// Input side, owned by the goroutine calling PollEvent
	dec      *decoder
	readBuf  []byte
	sigwinch chan os.Signal

	mu           sync.Mutex
	cursorHidden bool
	altScreen    bool
	closed       bool
}

// Option configures a Terminal
type Option func(*Terminal)

// WithColorMode overrides color capability detection
func WithColorMode(m ColorMode) Option {
	return func(t *Terminal) {
		t.output.colorMode = m
	}
}

// WithBackend replaces the controlling tty as the input device
func WithBackend(b Backend) Option {
	return func(t *Terminal) {
		t.backend = b
	}
}

// Open prepares a terminal writing to out
// Nothing is written until the first lifecycle step
func Open(out io.Writer, opts ...Option) (*Terminal, error) {
	t := &Terminal{
		output:   newOutputBuffer(out, detectColorMode(out)),
		dec:      newDecoder(),
		readBuf:  make([]byte, 256),
		sigwinch: make(chan os.Signal, 1),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.backend == nil {
		b, err := openTTY()
		if err != nil {
			return nil, err
		}
		t.backend = b
	}

	notifyResize(t.sigwinch)
	return t, nil
}

// ColorMode returns the color capability used for output
func (t *Terminal) ColorMode() ColorMode {
	return t.output.colorMode
}

// writeSeq writes escape sequences and flushes them immediately
func (t *Terminal) writeSeq(seqs ...[]byte) error {
	w := t.output.writer
	for _, s := range seqs {
		w.Write(s)
	}
	return w.Flush()
}

// HideCursor makes the cursor invisible
func (t *Terminal) HideCursor() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.writeSeq(csiCursorHide); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	t.cursorHidden = true
	return nil
}

// EnterAlternateScreen switches to the alternate buffer and clears it
func (t *Terminal) EnterAlternateScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.backend.Size()
	t.output.writer.Write(csiAltScreenEnter)
	// DECAWM off keeps the bottom-right cell from scrolling the screen
	t.output.writer.Write(csiAutoWrapOff)
	t.output.reset(w, h)
	if err := t.output.writer.Flush(); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	t.altScreen = true
	return nil
}

// EnableRawMode puts the input device in raw mode
func (t *Terminal) EnableRawMode() error {
	return t.backend.MakeRaw()
}

// DisableRawMode restores the input device mode saved by EnableRawMode
func (t *Terminal) DisableRawMode() error {
	return t.backend.Restore()
}

// LeaveAlternateScreen returns to the main buffer
func (t *Terminal) LeaveAlternateScreen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Auto-wrap is re-enabled after the switch so the main buffer gets it
	if err := t.writeSeq(csiSGR0, csiAltScreenExit, csiAutoWrapOn); err != nil {
		return fmt.Errorf("leave alternate screen: %w", err)
	}
	t.altScreen = false
	return nil
}

// ShowCursor makes the cursor visible
func (t *Terminal) ShowCursor() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.writeSeq(csiCursorShow); err != nil {
		return fmt.Errorf("show cursor: %w", err)
	}
	t.cursorHidden = false
	return nil
}

// Size returns current terminal dimensions
func (t *Terminal) Size() (int, int) {
	return t.backend.Size()
}

// Flush writes a frame, diffing against the previous one
// A frame whose size no longer matches the terminal is dropped; the resize event redraws
func (t *Terminal) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	if currW, currH := t.backend.Size(); currW != width || currH != height {
		return nil
	}
	if err := t.output.flush(cells, width, height); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// PollEvent blocks until the next input or resize event
// Read errors, including io.EOF on a closed tty, are returned as is
func (t *Terminal) PollEvent() (Event, error) {
	for {
		if ev, ok := t.dec.next(); ok {
			return ev, nil
		}

		select {
		case <-t.sigwinch:
			w, h := t.backend.Size()
			return Event{Type: EventResize, Width: w, Height: h}, nil
		default:
		}

		n, err := t.backend.Read(t.readBuf, readTimeoutMs)
		if err != nil {
			return Event{}, fmt.Errorf("read terminal input: %w", err)
		}
		if n == 0 {
			t.dec.flushEscape()
			continue
		}
		t.dec.feed(t.readBuf[:n])
	}
}

// Restore undoes every lifecycle step still in effect, ignoring errors
// It is meant for crash paths and may run on any goroutine
func (t *Terminal) Restore() {
	if err := t.backend.Restore(); err != nil {
		resetTerminalMode()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	w := t.output.writer
	if t.altScreen {
		w.Write(csiSGR0)
		w.Write(csiAltScreenExit)
		w.Write(csiAutoWrapOn)
		t.altScreen = false
	}
	if t.cursorHidden {
		w.Write(csiCursorShow)
		t.cursorHidden = false
	}
	w.Flush()
}

// Close releases the input device and stops resize notifications
func (t *Terminal) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()

	signal.Stop(t.sigwinch)
	return t.backend.Close()
}
