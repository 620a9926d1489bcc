package terminal

// Key represents a parsed input key
type Key uint16

// Key constants
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

type escapeSequence struct {
	key Key
	mod Modifier
}

// csiFinal maps the final byte of "ESC [ X" and "ESC [ 1 ; m X" forms
var csiFinal = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// csiTilde maps the numeric parameter of "ESC [ N ~" and "ESC [ N ; m ~" forms
var csiTilde = map[string]Key{
	"1":  KeyHome,
	"2":  KeyInsert,
	"3":  KeyDelete,
	"4":  KeyEnd,
	"5":  KeyPageUp,
	"6":  KeyPageDown,
	"7":  KeyHome,
	"8":  KeyEnd,
	"11": KeyF1,
	"12": KeyF2,
	"13": KeyF3,
	"14": KeyF4,
	"15": KeyF5,
	"17": KeyF6,
	"18": KeyF7,
	"19": KeyF8,
	"20": KeyF9,
	"21": KeyF10,
	"23": KeyF11,
	"24": KeyF12,
}

// ss3Final maps "ESC O X"
var ss3Final = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
	'M': KeyEnter, // Keypad Enter
}

// csiMap holds every recognized CSI body (bytes after "ESC [")
var csiMap = buildCSIMap()

func buildCSIMap() map[string]escapeSequence {
	m := make(map[string]escapeSequence, 256)

	for final, key := range csiFinal {
		// F1-F4 bare forms are SS3 only; "ESC [ P" is not a function key
		if key < KeyF1 || key > KeyF4 {
			m[string(final)] = escapeSequence{key, ModNone}
		}
		for p := 2; p <= 8; p++ {
			m["1;"+string(rune('0'+p))+string(final)] = escapeSequence{key, xtermModifier(p)}
		}
	}

	for num, key := range csiTilde {
		m[num+"~"] = escapeSequence{key, ModNone}
		for p := 2; p <= 8; p++ {
			m[num+";"+string(rune('0'+p))+"~"] = escapeSequence{key, xtermModifier(p)}
		}
	}

	m["Z"] = escapeSequence{KeyBacktab, ModShift}

	// Linux console function keys
	m["[A"] = escapeSequence{KeyF1, ModNone}
	m["[B"] = escapeSequence{KeyF2, ModNone}
	m["[C"] = escapeSequence{KeyF3, ModNone}
	m["[D"] = escapeSequence{KeyF4, ModNone}
	m["[E"] = escapeSequence{KeyF5, ModNone}

	return m
}

// xtermModifier decodes the xterm modifier parameter (1 + bitmask of shift/alt/ctrl)
func xtermModifier(p int) Modifier {
	return Modifier(p - 1)
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

// lookupSS3 resolves the single byte after "ESC O"
func lookupSS3(b byte) (Key, bool) {
	k, ok := ss3Final[b]
	return k, ok
}
