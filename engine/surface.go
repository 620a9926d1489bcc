package engine

import "github.com/lixenwraith/pipeview/terminal"

// Surface is the terminal the loop draws on
// Lifecycle steps are issued in a fixed order: HideCursor, EnterAlternateScreen,
// EnableRawMode on the way in; DisableRawMode, LeaveAlternateScreen, ShowCursor on the way out
type Surface interface {
	HideCursor() error
	EnterAlternateScreen() error
	EnableRawMode() error
	DisableRawMode() error
	LeaveAlternateScreen() error
	ShowCursor() error

	// Size returns current dimensions in cells
	Size() (width, height int)

	// Flush presents a frame; cells are row-major: cells[y*width + x]
	Flush(cells []terminal.Cell, width, height int) error
}
