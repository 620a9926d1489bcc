package engine

import (
	"github.com/lixenwraith/pipeview/terminal"
	"github.com/lixenwraith/pipeview/terminal/tui"
)

// Frame is one draw pass over a blank cell buffer sized to the surface
type Frame struct {
	Width  int
	Height int
	Number uint64 // Frames drawn before this one
	cells  []terminal.Cell
}

// Region returns the whole frame as a drawing region
func (f *Frame) Region() tui.Region {
	return tui.NewRegion(f.cells, f.Width, 0, 0, f.Width, f.Height)
}

// Cells exposes the frame buffer, row-major
func (f *Frame) Cells() []terminal.Cell {
	return f.cells
}

// DrawFunc renders into a frame
// It runs on the main loop goroutine and must not block
type DrawFunc func(f *Frame)

// NewFrame allocates a blank frame, for drawing outside the loop
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{Width: width, Height: height, cells: make([]terminal.Cell, width*height)}
}
