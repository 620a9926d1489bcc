package tui

import "github.com/lixenwraith/pipeview/terminal"

// brailleBase is U+2800, the empty braille pattern
const brailleBase = 0x2800

// brailleDots maps a dot's (column, row) inside a cell to its pattern bit
// Columns 0-1, rows 0-3 top to bottom
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a dot grid at braille resolution: 2x4 dots per cell
// Dot (0,0) is the top-left corner
type Canvas struct {
	w, h   int // in cells
	dots   []rune
	colors []terminal.Color
}

// NewCanvas creates a canvas covering w x h cells
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{
		w:      w,
		h:      h,
		dots:   make([]rune, w*h),
		colors: make([]terminal.Color, w*h),
	}
}

// Resolution returns the canvas size in dots
func (c *Canvas) Resolution() (int, int) {
	return c.w * 2, c.h * 4
}

// Set lights one dot; the cell takes the color of the last dot set in it
func (c *Canvas) Set(x, y int, color terminal.Color) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}
	idx := (y/4)*c.w + x/2
	c.dots[idx] |= brailleDots[y%4][x%2]
	c.colors[idx] = color
}

// Line lights the dots between two points (Bresenham)
func (c *Canvas) Line(x0, y0, x1, y1 int, color terminal.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Draw writes every cell with at least one lit dot into r
// Empty cells are left untouched
func (c *Canvas) Draw(r Region) {
	for cy := 0; cy < c.h && cy < r.H; cy++ {
		for cx := 0; cx < c.w && cx < r.W; cx++ {
			idx := cy*c.w + cx
			if c.dots[idx] == 0 {
				continue
			}
			r.Cell(cx, cy, brailleBase|c.dots[idx], NewStyle().WithFg(c.colors[idx]))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
