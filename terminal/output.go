package terminal

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
)

// outputBuffer keeps the last flushed frame and writes only changed cells
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing
	lastFg    Color
	lastBg    Color
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(w io.Writer, colorMode ColorMode) *outputBuffer {
	return &outputBuffer{
		writer:    bufio.NewWriterSize(w, 64*1024),
		colorMode: colorMode,
	}
}

// reset clears the physical screen and forgets the previous frame
func (o *outputBuffer) reset(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
		clear(o.front)
	}
	o.width = width
	o.height = height

	o.writer.Write(csiSGR0)
	o.writer.Write(csiClear)
	o.lastValid = false
	o.cursorValid = false
}

// flush writes cells that differ from the previous frame
// Cells are row-major: cells[y*width + x]
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if len(cells) < width*height {
		return nil
	}
	if width != o.width || height != o.height {
		o.reset(width, height)
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			if cells[idx] == o.front[idx] {
				x++
				continue
			}

			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			for x < width {
				cidx := rowStart + x
				c := cells[cidx]
				if c == o.front[cidx] {
					break
				}
				if c.Rune == WideTail {
					o.front[cidx] = c
					x++
					if o.cursorX != x {
						// Orphan tail, its head was not written in this run
						break
					}
					continue
				}
				if o.cursorX != x {
					break
				}

				o.front[cidx] = c
				x++
				o.writeStyle(w, c.Fg, c.Bg, c.Attrs)
				o.cursorX += o.writeRune(w, c.Rune, width-x+1)
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	return w.Flush()
}

// writeRune writes r and returns the number of columns the cursor advanced
func (o *outputBuffer) writeRune(w *bufio.Writer, r rune, room int) int {
	if r == 0 {
		w.WriteByte(' ')
		return 1
	}
	if r < 0x80 {
		if r < 0x20 || r == 0x7f {
			r = ' '
		}
		w.WriteByte(byte(r))
		return 1
	}

	switch rw := runewidth.RuneWidth(r); {
	case rw == 2 && room >= 2:
		w.WriteRune(r)
		return 2
	case rw == 1:
		w.WriteRune(r)
		return 1
	}
	// Zero-width runes and wide runes clipped at the right edge
	w.WriteByte(' ')
	return 1
}

// writeStyle emits a single combined SGR sequence when the style changes
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg Color, attr Attr) {
	if o.lastValid && fg == o.lastFg && bg == o.lastBg && attr == o.lastAttr {
		return
	}

	w.Write(csi)
	w.WriteByte('0')
	for _, a := range sgrAttrs {
		if attr&a.attr != 0 {
			w.WriteByte(';')
			w.WriteByte(a.code)
		}
	}
	o.writeColor(w, fg, false)
	o.writeColor(w, bg, true)
	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

// writeColor writes ";<params>" for fg or bg, nothing for the default color
// SGR 0 has already reset both to the default
func (o *outputBuffer) writeColor(w *bufio.Writer, c Color, bg bool) {
	if c.IsDefault() {
		return
	}

	w.WriteByte(';')
	if idx, ok := c.Index(); ok {
		switch {
		case idx < 8:
			base := 30
			if bg {
				base = 40
			}
			writeInt(w, base+int(idx))
		case idx < 16:
			base := 90
			if bg {
				base = 100
			}
			writeInt(w, base+int(idx)-8)
		default:
			writeExtendedPrefix(w, bg, '5')
			writeInt(w, int(idx))
		}
		return
	}

	r, g, b, _ := c.RGB()
	if o.colorMode == ColorModeTrueColor {
		writeExtendedPrefix(w, bg, '2')
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		return
	}
	writeExtendedPrefix(w, bg, '5')
	writeInt(w, int(RGBTo256(r, g, b)))
}

// writeExtendedPrefix writes "38;k;" or "48;k;"
func writeExtendedPrefix(w *bufio.Writer, bg bool, kind byte) {
	if bg {
		w.WriteString("48;")
	} else {
		w.WriteString("38;")
	}
	w.WriteByte(kind)
	w.WriteByte(';')
}
