package terminal

import "errors"

// ErrNotTerminal is returned when no controlling terminal is available for input
var ErrNotTerminal = errors.New("terminal: no controlling terminal")

// Backend abstracts the input side of the terminal: raw mode, size and key bytes
// Output never goes through the backend, it is written to the sink given to Open
type Backend interface {
	// MakeRaw switches the input device to raw mode
	MakeRaw() error
	// Restore undoes MakeRaw. Safe to call without a prior MakeRaw
	Restore() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Read waits up to timeoutMs for input
	// It returns 0, nil on timeout and io.EOF when the device is closed
	Read(buf []byte, timeoutMs int) (int, error)

	Close() error
}
