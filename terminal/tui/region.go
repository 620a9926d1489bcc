package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pipeview/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	w = max(w, 0)
	h = max(h, 0)

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether the region has no cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// At returns the cell at x, y or nil when out of bounds
func (r Region) At(x, y int) *terminal.Cell {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return nil
	}
	absX := r.X + x
	if uint(absX) >= uint(r.TotalW) {
		return nil
	}
	idx := (r.Y+y)*r.TotalW + absX
	if uint(idx) >= uint(len(r.Cells)) {
		return nil
	}
	return &r.Cells[idx]
}

// Cell sets a single cell's rune and layers st over its existing style
func (r Region) Cell(x, y int, ch rune, st Style) {
	if c := r.At(x, y); c != nil {
		c.Rune = ch
		st.Apply(c)
	}
}

// SetStyle layers st over every cell in the region, keeping runes
func (r Region) SetStyle(st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if c := r.At(x, y); c != nil {
				st.Apply(c)
			}
		}
	}
}

// Fill sets every cell to ch styled with st
func (r Region) Fill(ch rune, st Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ch, st)
		}
	}
}

// Clear resets every cell to a blank with default colors
func (r Region) Clear() {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if c := r.At(x, y); c != nil {
				*c = terminal.Cell{}
			}
		}
	}
}

// Text renders s starting at column x, clipped to the region
// Double-width runes occupy two cells, the second holding terminal.WideTail
// Returns the column after the last rune drawn
func (r Region) Text(x, y int, s string, st Style) int {
	if y < 0 || y >= r.H {
		return x
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, st)
			if w == 2 {
				r.Cell(col+1, y, terminal.WideTail, st)
			}
		}
		col += w
	}
	return col
}

// Width returns region width
func (r Region) Width() int {
	return r.W
}

// Height returns region height
func (r Region) Height() int {
	return r.H
}
