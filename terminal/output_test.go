package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func blankFrame(w, h int) []Cell {
	return make([]Cell, w*h)
}

func TestOutput_FirstFlushWritesChangedCells(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := blankFrame(4, 2)
	cells[1] = Cell{Rune: 'x', Fg: ColorRed}
	if err := o.flush(cells, 4, 2); err != nil {
		t.Fatalf("flush: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[2J") {
		t.Error("Expected screen clear on first frame")
	}
	if !strings.Contains(out, "\x1b[1;2H") {
		t.Errorf("Expected cursor move to row 1 col 2, got %q", out)
	}
	if !strings.Contains(out, "\x1b[0;31mx") {
		t.Errorf("Expected red x, got %q", out)
	}
}

func TestOutput_UnchangedFrameWritesNoCells(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := blankFrame(3, 1)
	cells[0] = Cell{Rune: 'a'}
	o.flush(cells, 3, 1)

	buf.Reset()
	o.flush(cells, 3, 1)
	if got := buf.String(); got != "\x1b[0m" {
		t.Errorf("Expected only SGR reset, got %q", got)
	}
}

func TestOutput_Colors(t *testing.T) {
	tests := []struct {
		name string
		mode ColorMode
		cell Cell
		want string
	}{
		{"bright fg", ColorMode256, Cell{Rune: 'a', Fg: ColorLightBlue}, "\x1b[0;94m"},
		{"basic bg", ColorMode256, Cell{Rune: 'a', Bg: ColorGreen}, "\x1b[0;42m"},
		{"palette", ColorMode256, Cell{Rune: 'a', Fg: Indexed(200)}, "\x1b[0;38;5;200m"},
		{"rgb truecolor", ColorModeTrueColor, Cell{Rune: 'a', Fg: NewRGB(1, 2, 3)}, "\x1b[0;38;2;1;2;3m"},
		{"rgb fallback", ColorMode256, Cell{Rune: 'a', Bg: NewRGB(255, 0, 0)}, "\x1b[0;48;5;196m"},
		{"attrs", ColorMode256, Cell{Rune: 'a', Attrs: AttrBold | AttrStrikethrough}, "\x1b[0;1;9m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := newOutputBuffer(&buf, tt.mode)
			o.flush([]Cell{tt.cell}, 1, 1)
			if !strings.Contains(buf.String(), tt.want+"a") {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestOutput_WideRuneSkipsTail(t *testing.T) {
	var buf bytes.Buffer
	o := newOutputBuffer(&buf, ColorMode256)

	cells := []Cell{{Rune: '中'}, {Rune: WideTail}, {Rune: 'z'}}
	o.flush(cells, 3, 1)

	out := buf.String()
	if !strings.Contains(out, "中z") {
		t.Errorf("Expected tail cell to produce no output, got %q", out)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},
		{255, 0, 0, 196},
		{255, 255, 255, 231},
		{128, 128, 128, 244},
	}
	for _, tt := range tests {
		if got := RGBTo256(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBTo256(%d,%d,%d): expected %d, got %d", tt.r, tt.g, tt.b, tt.want, got)
		}
	}
}
