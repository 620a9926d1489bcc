package terminal

import "unicode/utf8"

// decoder turns raw tty bytes into events
// It is driven synchronously by PollEvent: feed appends bytes, next drains parsed events
type decoder struct {
	// Stream assembly buffer, holds an incomplete sequence between reads
	buf    []byte
	events []Event
}

func newDecoder() *decoder {
	return &decoder{
		buf:    make([]byte, 0, 256),
		events: make([]Event, 0, 16),
	}
}

// feed appends data and parses every complete sequence
func (d *decoder) feed(data []byte) {
	d.buf = append(d.buf, data...)

	consumed := d.parse(d.buf)
	if consumed >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	if consumed > 0 {
		n := copy(d.buf, d.buf[consumed:])
		d.buf = d.buf[:n]
	}
}

// flushEscape emits a pending standalone ESC after the read timeout expired
func (d *decoder) flushEscape() {
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.emit(Event{Type: EventKey, Key: KeyEscape})
		d.buf = d.buf[:0]
	}
}

// next pops the oldest parsed event
func (d *decoder) next() (Event, bool) {
	if len(d.events) == 0 {
		return Event{}, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	if len(d.events) == 0 {
		d.events = d.events[:0:cap(d.events)]
	}
	return ev, true
}

// pending reports whether parsed events are waiting
func (d *decoder) pending() bool {
	return len(d.events) > 0
}

func (d *decoder) emit(ev Event) {
	d.events = append(d.events, ev)
}

// parse consumes complete sequences and returns the number of bytes used
// Parsing stops at the first incomplete sequence
func (d *decoder) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			d.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			// Unknown sequences are swallowed
			if ev.Key != KeyNone || ev.Type != EventKey {
				d.emit(ev)
			}
			i += consumed

		case b < 0x20:
			d.emit(parseControl(b))
			i++

		case b == 0x7f:
			d.emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError || size > 1 {
				d.emit(Event{Type: EventKey, Key: KeyRune, Rune: r})
			}
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting with ESC, returns 0 when incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch b := data[1]; {
	case b == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case b == '[':
		return parseCSI(data)
	case b == 'O':
		return parseSS3(data)
	case b < 0x20:
		ev := parseControl(b)
		ev.Modifiers |= ModAlt
		return 2, ev
	case b < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(b), Modifiers: ModAlt}
	}

	// ESC followed by a UTF-8 lead byte: report the bare ESC and let the rune parse next
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// maxCSILen bounds how far a CSI body is scanned for its final byte
const maxCSILen = 16

func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	if data[2] == '<' {
		return parseSGRMouse(data)
	}

	// Linux console "ESC [ [ X" keeps '[' inside the body
	start := 2
	if data[2] == '[' {
		start = 3
	}

	for end := start; end < len(data); end++ {
		if end >= maxCSILen {
			// Overlong garbage, drop what was scanned
			return end, Event{Type: EventKey, Key: KeyNone}
		}
		b := data[end]
		if isCSIFinal(b) {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Broken sequence, drop the introducer only
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	return 0, Event{}
}

func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, ok := lookupSS3(data[2]); ok {
		return 3, Event{Type: EventKey, Key: key}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseControl maps C0 control bytes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x00:
		return Event{Type: EventKey, Key: KeyCtrlSpace}
	case 0x08:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	case 0x1c:
		return Event{Type: EventKey, Key: KeyCtrlBackslash}
	case 0x1d:
		return Event{Type: EventKey, Key: KeyCtrlBracketRight}
	case 0x1e:
		return Event{Type: EventKey, Key: KeyCtrlCaret}
	case 0x1f:
		return Event{Type: EventKey, Key: KeyCtrlUnderscore}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// parseSGRMouse parses "ESC [ < Btn ; X ; Y M/m"
func parseSGRMouse(data []byte) (int, Event) {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		if end >= 32 {
			return end, Event{Type: EventKey, Key: KeyNone}
		}
		end++
	}
	if end >= len(data) {
		return 0, Event{}
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{Type: EventKey, Key: KeyNone}
	}

	ev := Event{Type: EventMouse, MouseX: x - 1, MouseY: y - 1}

	// Bits 0-1: button, bit 5: motion, bit 6: wheel
	buttonID := btn & 0x03
	motion := btn&32 != 0

	if btn&64 != 0 {
		ev.MouseBtn = MouseBtnWheelUp
		if buttonID != 0 {
			ev.MouseBtn = MouseBtnWheelDown
		}
		ev.MouseAction = MouseActionPress
	} else {
		switch buttonID {
		case 0:
			ev.MouseBtn = MouseBtnLeft
		case 1:
			ev.MouseBtn = MouseBtnMiddle
		case 2:
			ev.MouseBtn = MouseBtnRight
		}
		switch {
		case data[end] == 'm':
			ev.MouseAction = MouseActionRelease
		case motion && ev.MouseBtn != MouseBtnNone:
			ev.MouseAction = MouseActionDrag
		case motion:
			ev.MouseAction = MouseActionMove
		default:
			ev.MouseAction = MouseActionPress
		}
	}

	if btn&4 != 0 {
		ev.Modifiers |= ModShift
	}
	if btn&8 != 0 {
		ev.Modifiers |= ModAlt
	}
	if btn&16 != 0 {
		ev.Modifiers |= ModCtrl
	}

	return end + 1, ev
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y"
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	var vals [3]int
	field := 0
	for _, b := range data {
		switch {
		case b == ';':
			field++
			if field > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			vals[field] = vals[field]*10 + int(b-'0')
			if vals[field] > 9999 {
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}
	if field != 2 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}
