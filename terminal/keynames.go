package terminal

import (
	"strconv"
	"strings"
)

// keyToName maps Key constants to canonical names used in logs
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

func init() {
	for k := KeyF1; k <= KeyF12; k++ {
		keyToName[k] = "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		keyToName[k] = "ctrl_" + string(rune('a'+(k-KeyCtrlA)))
	}
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// String renders the modifier set as "ctrl+alt+shift+" prefix parts
func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// String describes the event for debug logs
func (e Event) String() string {
	switch e.Type {
	case EventResize:
		return "resize " + strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height)
	case EventMouse:
		return "mouse " + e.MouseBtn.String() + " " + e.MouseAction.String() +
			" @" + strconv.Itoa(e.MouseX) + "," + strconv.Itoa(e.MouseY)
	case EventPaste:
		return "paste"
	case EventError:
		return "error"
	}

	name := KeyName(e.Key)
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if name == "" {
		name = "none"
	}
	if mods := e.Modifiers.String(); mods != "" {
		return "key " + mods + "+" + name
	}
	return "key " + name
}
