package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pipeview/terminal"
)

// attrMap pairs terminal attributes with tcell's
var attrMap = [...]struct {
	from terminal.Attr
	to   tcell.AttrMask
}{
	{terminal.AttrBold, tcell.AttrBold},
	{terminal.AttrDim, tcell.AttrDim},
	{terminal.AttrItalic, tcell.AttrItalic},
	{terminal.AttrUnderline, tcell.AttrUnderline},
	{terminal.AttrBlink, tcell.AttrBlink},
	{terminal.AttrRapidBlink, tcell.AttrBlink},
	{terminal.AttrReverse, tcell.AttrReverse},
	{terminal.AttrStrikethrough, tcell.AttrStrikeThrough},
}

func convertColor(c terminal.Color) tcell.Color {
	if idx, ok := c.Index(); ok {
		return tcell.PaletteColor(int(idx))
	}
	if r, g, b, ok := c.RGB(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

func convertStyle(c terminal.Cell) tcell.Style {
	var mask tcell.AttrMask
	for _, a := range attrMap {
		if c.Attrs&a.from != 0 {
			mask |= a.to
		}
	}

	fg := convertColor(c.Fg)
	bg := convertColor(c.Bg)
	// tcell has no concealed attribute; draw text in the background color
	if c.Attrs&terminal.AttrHidden != 0 {
		fg = bg
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(mask)
}

func convertModifiers(m tcell.ModMask) terminal.Modifier {
	var out terminal.Modifier
	if m&tcell.ModShift != 0 {
		out |= terminal.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= terminal.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		out |= terminal.ModAlt
	}
	return out
}

func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyBacktab:
		return terminal.KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyPgUp:
		return terminal.KeyPageUp
	case tcell.KeyPgDn:
		return terminal.KeyPageDown
	case tcell.KeyInsert:
		return terminal.KeyInsert
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return terminal.KeyCtrlA + terminal.Key(k-tcell.KeyCtrlA)
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return terminal.KeyF1 + terminal.Key(k-tcell.KeyF1)
	}
	return terminal.KeyNone
}

// convertEvent maps key, resize and mouse events; anything else reports false
func convertEvent(ev tcell.Event) (terminal.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		out := terminal.Event{
			Type:      terminal.EventKey,
			Key:       convertKey(ev.Key()),
			Modifiers: convertModifiers(ev.Modifiers()),
		}
		if ev.Key() == tcell.KeyRune {
			out.Rune = ev.Rune()
		}
		return out, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}, true

	case *tcell.EventMouse:
		x, y := ev.Position()
		return terminal.Event{Type: terminal.EventMouse, MouseX: x, MouseY: y}, true
	}
	return terminal.Event{}, false
}
