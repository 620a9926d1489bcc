package tui

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/pipeview/terminal"
)

func newTestRegion(w, h int) Region {
	return NewRegion(make([]terminal.Cell, w*h), w, 0, 0, w, h)
}

func rowText(r Region, y int) string {
	var out []rune
	for x := 0; x < r.W; x++ {
		c := r.At(x, y)
		switch c.Rune {
		case 0:
			out = append(out, ' ')
		case terminal.WideTail:
		default:
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

func TestRegion_SubClips(t *testing.T) {
	r := newTestRegion(10, 5)
	sub := r.Sub(8, 3, 5, 5)
	if sub.W != 2 || sub.H != 2 || sub.X != 8 || sub.Y != 3 {
		t.Errorf("Expected 2x2 at 8,3, got %dx%d at %d,%d", sub.W, sub.H, sub.X, sub.Y)
	}

	sub.Cell(5, 5, 'x', NewStyle())
	for i, c := range r.Cells {
		if c.Rune != 0 {
			t.Errorf("Expected out-of-bounds write to be ignored, cell %d set", i)
		}
	}
}

func TestRegion_TextWideRunes(t *testing.T) {
	r := newTestRegion(5, 1)
	end := r.Text(0, 0, "a中b", NewStyle())
	if end != 4 {
		t.Errorf("Expected end column 4, got %d", end)
	}
	if r.At(2, 0).Rune != terminal.WideTail {
		t.Errorf("Expected wide tail at column 2, got %q", r.At(2, 0).Rune)
	}

	// Wide rune that does not fit is dropped
	r = newTestRegion(2, 1)
	r.Text(1, 0, "中", NewStyle())
	if r.At(1, 0).Rune != 0 {
		t.Errorf("Expected clipped wide rune to be skipped, got %q", r.At(1, 0).Rune)
	}
}

func TestStyle_Patch(t *testing.T) {
	base := NewStyle().WithFg(terminal.ColorRed).WithAdd(terminal.AttrBold | terminal.AttrItalic)
	top := NewStyle().WithBg(terminal.ColorBlue).WithSub(terminal.AttrItalic)

	got := base.Patch(top)
	if got.Fg != terminal.ColorRed || !got.FgSet {
		t.Error("Expected fg to survive a patch without fg")
	}
	if got.Bg != terminal.ColorBlue || !got.BgSet {
		t.Error("Expected bg from the patch")
	}
	if got.Add != terminal.AttrBold || got.Sub != terminal.AttrItalic {
		t.Errorf("Expected add=bold sub=italic, got add=%d sub=%d", got.Add, got.Sub)
	}

	c := terminal.Cell{Attrs: terminal.AttrItalic | terminal.AttrDim}
	got.Apply(&c)
	if c.Attrs != terminal.AttrBold|terminal.AttrDim {
		t.Errorf("Expected bold|dim after apply, got %d", c.Attrs)
	}
}

func TestRegion_BoxSides(t *testing.T) {
	r := newTestRegion(4, 3)
	r.Box(BorderAll, LineRounded, NewStyle())
	want := []string{"╭──╮", "│  │", "╰──╯"}
	for y, w := range want {
		if got := rowText(r, y); got != w {
			t.Errorf("Row %d: expected %q, got %q", y, w, got)
		}
	}

	r = newTestRegion(4, 3)
	r.Box(BorderTop|BorderLeft, LineSingle, NewStyle())
	want = []string{"┌───", "│   ", "│   "}
	for y, w := range want {
		if got := rowText(r, y); got != w {
			t.Errorf("Row %d: expected %q, got %q", y, w, got)
		}
	}

	inner := r.Inner(BorderTop | BorderLeft)
	if inner.X != 1 || inner.Y != 1 || inner.W != 3 || inner.H != 2 {
		t.Errorf("Expected inner 3x2 at 1,1, got %dx%d at %d,%d", inner.W, inner.H, inner.X, inner.Y)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		trim  bool
		want  []string
	}{
		{"fits", "hello", 10, false, []string{"hello"}},
		{"word boundary", "hello world foo", 11, true, []string{"hello world", "foo"}},
		{"keeps space", "hello world foo", 11, false, []string{"hello world", " foo"}},
		{"long word", "abcdefghij", 4, true, []string{"abcd", "efgh", "ij"}},
		{"empty", "", 5, true, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, tt.width, tt.trim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAlignmentOffset(t *testing.T) {
	if got := AlignCenter.Offset(4, 10); got != 3 {
		t.Errorf("Expected center offset 3, got %d", got)
	}
	if got := AlignRight.Offset(4, 10); got != 6 {
		t.Errorf("Expected right offset 6, got %d", got)
	}
	if got := AlignRight.Offset(12, 10); got != 0 {
		t.Errorf("Expected overflow clamp to 0, got %d", got)
	}
}

func TestSkipColumns(t *testing.T) {
	if got := SkipColumns("abcdef", 2); got != "cdef" {
		t.Errorf("Expected %q, got %q", "cdef", got)
	}
	if got := SkipColumns("中文", 1); got != " 文" {
		t.Errorf("Expected split wide rune replaced by space, got %q", got)
	}
	if got := SkipColumns("ab", 5); got != "" {
		t.Errorf("Expected empty, got %q", got)
	}
}

func TestCanvas_Braille(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, terminal.ColorRed)
	c.Set(1, 3, terminal.ColorRed)

	r := newTestRegion(2, 1)
	c.Draw(r)

	if got := r.At(0, 0).Rune; got != 0x2800|0x01|0x80 {
		t.Errorf("Expected U+2881, got %U", got)
	}
	if r.At(0, 0).Fg != terminal.ColorRed {
		t.Error("Expected dot color on cell fg")
	}
	if r.At(1, 0).Rune != 0 {
		t.Error("Expected empty cell left untouched")
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Line(0, 0, 3, 3, terminal.ColorGreen)

	r := newTestRegion(2, 1)
	c.Draw(r)

	// Diagonal: (0,0),(1,1) in the first cell, (2,2),(3,3) in the second
	if got := r.At(0, 0).Rune; got != 0x2800|0x01|0x10 {
		t.Errorf("Expected U+2811, got %U", got)
	}
	if got := r.At(1, 0).Rune; got != 0x2800|0x04|0x80 {
		t.Errorf("Expected U+2884, got %U", got)
	}
}
