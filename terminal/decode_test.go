package terminal

import "testing"

func decodeAll(chunks ...string) []Event {
	d := newDecoder()
	for _, c := range chunks {
		d.feed([]byte(c))
	}
	var out []Event
	for {
		ev, ok := d.next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestDecoder_Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   Key
		r     rune
		mod   Modifier
	}{
		{"printable", "a", KeyRune, 'a', ModNone},
		{"ctrl-c", "\x03", KeyCtrlC, 0, ModNone},
		{"enter", "\r", KeyEnter, 0, ModNone},
		{"tab", "\t", KeyTab, 0, ModNone},
		{"del", "\x7f", KeyBackspace, 0, ModNone},
		{"up", "\x1b[A", KeyUp, 0, ModNone},
		{"ss3 f1", "\x1bOP", KeyF1, 0, ModNone},
		{"ctrl-right", "\x1b[1;5C", KeyRight, 0, ModCtrl},
		{"shift-alt-up", "\x1b[1;4A", KeyUp, 0, ModShift | ModAlt},
		{"delete", "\x1b[3~", KeyDelete, 0, ModNone},
		{"ctrl-pgdn", "\x1b[6;5~", KeyPageDown, 0, ModCtrl},
		{"f12", "\x1b[24~", KeyF12, 0, ModNone},
		{"backtab", "\x1b[Z", KeyBacktab, 0, ModShift},
		{"linux f1", "\x1b[[A", KeyF1, 0, ModNone},
		{"alt-x", "\x1bx", KeyRune, 'x', ModAlt},
		{"alt-ctrl-c", "\x1b\x03", KeyCtrlC, 0, ModAlt},
		{"utf8", "é", KeyRune, 'é', ModNone},
		{"wide", "中", KeyRune, '中', ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evs := decodeAll(tt.input)
			if len(evs) != 1 {
				t.Fatalf("Expected 1 event, got %d: %v", len(evs), evs)
			}
			ev := evs[0]
			if ev.Type != EventKey || ev.Key != tt.key || ev.Rune != tt.r || ev.Modifiers != tt.mod {
				t.Errorf("Expected key=%d rune=%q mod=%d, got key=%d rune=%q mod=%d",
					tt.key, tt.r, tt.mod, ev.Key, ev.Rune, ev.Modifiers)
			}
		})
	}
}

func TestDecoder_SplitSequences(t *testing.T) {
	evs := decodeAll("\x1b", "[1;", "5", "C")
	if len(evs) != 1 || evs[0].Key != KeyRight || evs[0].Modifiers != ModCtrl {
		t.Errorf("Expected one Ctrl+Right, got %v", evs)
	}

	evs = decodeAll("\xe4", "\xb8", "\xad")
	if len(evs) != 1 || evs[0].Rune != '中' {
		t.Errorf("Expected rune across reads, got %v", evs)
	}
}

func TestDecoder_LoneEscape(t *testing.T) {
	d := newDecoder()
	d.feed([]byte{0x1b})
	if d.pending() {
		t.Fatal("Expected ESC to wait for more bytes")
	}

	d.flushEscape()
	ev, ok := d.next()
	if !ok || ev.Key != KeyEscape || ev.Modifiers != ModNone {
		t.Errorf("Expected standalone escape, got %v (ok=%v)", ev, ok)
	}
}

func TestDecoder_UnknownSequenceSwallowed(t *testing.T) {
	evs := decodeAll("\x1b[99zq")
	if len(evs) != 1 || evs[0].Rune != 'q' {
		t.Errorf("Expected only 'q' after unknown CSI, got %v", evs)
	}
}

func TestDecoder_Order(t *testing.T) {
	evs := decodeAll("ab\x03c")
	want := []Key{KeyRune, KeyRune, KeyCtrlC, KeyRune}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(evs))
	}
	for i, k := range want {
		if evs[i].Key != k {
			t.Errorf("Event %d: expected key %d, got %d", i, k, evs[i].Key)
		}
	}
}

func TestDecoder_SGRMouse(t *testing.T) {
	evs := decodeAll("\x1b[<0;10;5M", "\x1b[<0;10;5m", "\x1b[<65;1;1M")
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}

	press := evs[0]
	if press.Type != EventMouse || press.MouseBtn != MouseBtnLeft || press.MouseAction != MouseActionPress {
		t.Errorf("Expected left press, got %v", press)
	}
	if press.MouseX != 9 || press.MouseY != 4 {
		t.Errorf("Expected 0-indexed position 9,4, got %d,%d", press.MouseX, press.MouseY)
	}
	if evs[1].MouseAction != MouseActionRelease {
		t.Errorf("Expected release, got %v", evs[1].MouseAction)
	}
	if evs[2].MouseBtn != MouseBtnWheelDown {
		t.Errorf("Expected wheel down, got %v", evs[2].MouseBtn)
	}
}
