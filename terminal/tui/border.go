package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Borders selects which sides of a box are drawn
type Borders uint8

const (
	BorderNone   Borders = 0
	BorderTop    Borders = 1 << 0
	BorderRight  Borders = 1 << 1
	BorderBottom Borders = 1 << 2
	BorderLeft   Borders = 1 << 3
	BorderAll            = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether every side in s is selected
func (b Borders) Has(s Borders) bool {
	return b&s == s
}

// Box draws the selected sides along the region edge
// Corners are drawn only where two selected sides meet
func (r Region) Box(sides Borders, line LineType, st Style) {
	if r.Empty() || sides == BorderNone {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	if sides.Has(BorderTop) {
		for x := 0; x < r.W; x++ {
			r.Cell(x, 0, chars[boxH], st)
		}
	}
	if sides.Has(BorderBottom) {
		for x := 0; x < r.W; x++ {
			r.Cell(x, r.H-1, chars[boxH], st)
		}
	}
	if sides.Has(BorderLeft) {
		for y := 0; y < r.H; y++ {
			r.Cell(0, y, chars[boxV], st)
		}
	}
	if sides.Has(BorderRight) {
		for y := 0; y < r.H; y++ {
			r.Cell(r.W-1, y, chars[boxV], st)
		}
	}

	if sides.Has(BorderTop | BorderLeft) {
		r.Cell(0, 0, chars[boxTL], st)
	}
	if sides.Has(BorderTop | BorderRight) {
		r.Cell(r.W-1, 0, chars[boxTR], st)
	}
	if sides.Has(BorderBottom | BorderLeft) {
		r.Cell(0, r.H-1, chars[boxBL], st)
	}
	if sides.Has(BorderBottom | BorderRight) {
		r.Cell(r.W-1, r.H-1, chars[boxBR], st)
	}
}

// Inner returns the area left inside the selected sides
func (r Region) Inner(sides Borders) Region {
	x, y, w, h := 0, 0, r.W, r.H
	if sides.Has(BorderLeft) {
		x++
		w--
	}
	if sides.Has(BorderRight) {
		w--
	}
	if sides.Has(BorderTop) {
		y++
		h--
	}
	if sides.Has(BorderBottom) {
		h--
	}
	return r.Sub(x, y, w, h)
}
