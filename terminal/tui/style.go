package tui

import "github.com/lixenwraith/pipeview/terminal"

// Style describes how a cell is changed when drawn over
// Unset colors leave the cell's color alone; Add and Sub toggle attribute bits
type Style struct {
	Fg, Bg       terminal.Color
	FgSet, BgSet bool
	Add, Sub     terminal.Attr
}

// NewStyle returns a style that changes nothing
func NewStyle() Style {
	return Style{}
}

// WithFg returns a copy with the foreground set
func (s Style) WithFg(c terminal.Color) Style {
	s.Fg, s.FgSet = c, true
	return s
}

// WithBg returns a copy with the background set
func (s Style) WithBg(c terminal.Color) Style {
	s.Bg, s.BgSet = c, true
	return s
}

// WithAdd returns a copy that also adds attrs
func (s Style) WithAdd(a terminal.Attr) Style {
	s.Add |= a
	s.Sub &^= a
	return s
}

// WithSub returns a copy that also removes attrs
func (s Style) WithSub(a terminal.Attr) Style {
	s.Sub |= a
	s.Add &^= a
	return s
}

// Patch layers other on top of s: set colors win, attribute changes accumulate
func (s Style) Patch(other Style) Style {
	if other.FgSet {
		s.Fg, s.FgSet = other.Fg, true
	}
	if other.BgSet {
		s.Bg, s.BgSet = other.Bg, true
	}
	s.Add = (s.Add &^ other.Sub) | other.Add
	s.Sub = (s.Sub &^ other.Add) | other.Sub
	return s
}

// IsZero returns true if the style changes nothing
func (s Style) IsZero() bool {
	return !s.FgSet && !s.BgSet && s.Add == terminal.AttrNone && s.Sub == terminal.AttrNone
}

// Apply changes a cell's colors and attributes in place
func (s Style) Apply(c *terminal.Cell) {
	if s.FgSet {
		c.Fg = s.Fg
	}
	if s.BgSet {
		c.Bg = s.Bg
	}
	c.Attrs = (c.Attrs | s.Add) &^ s.Sub
}
