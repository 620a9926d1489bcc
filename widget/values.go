package widget

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/pipeview/terminal"
	"github.com/lixenwraith/pipeview/terminal/tui"
)

// ErrInvalidValue is wrapped by every option parse failure
var ErrInvalidValue = errors.New("invalid value")

func invalid(kind, s string) error {
	return fmt.Errorf("%w for %s: %q", ErrInvalidValue, kind, s)
}

// splitList splits a comma separated flag value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var colorNames = []struct {
	name  string
	color terminal.Color
}{
	{"reset", terminal.ColorReset},
	{"black", terminal.ColorBlack},
	{"red", terminal.ColorRed},
	{"green", terminal.ColorGreen},
	{"yellow", terminal.ColorYellow},
	{"blue", terminal.ColorBlue},
	{"magenta", terminal.ColorMagenta},
	{"cyan", terminal.ColorCyan},
	{"gray", terminal.ColorGray},
	{"dark-gray", terminal.ColorDarkGray},
	{"light-red", terminal.ColorLightRed},
	{"light-green", terminal.ColorLightGreen},
	{"light-yellow", terminal.ColorLightYellow},
	{"light-blue", terminal.ColorLightBlue},
	{"light-magenta", terminal.ColorLightMagenta},
	{"light-cyan", terminal.ColorLightCyan},
	{"white", terminal.ColorWhite},
}

// ParseColor accepts a color name, #rrggbb or a palette index 0-255
func ParseColor(s string) (terminal.Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, c := range colorNames {
		if c.name == in {
			return c.color, nil
		}
	}

	if hex, ok := strings.CutPrefix(in, "#"); ok {
		if len(hex) != 6 {
			return terminal.Color{}, invalid("color", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return terminal.Color{}, invalid("color", s)
		}
		return terminal.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	n, err := strconv.ParseUint(in, 10, 8)
	if err != nil {
		return terminal.Color{}, invalid("color", s)
	}
	return terminal.Indexed(uint8(n)), nil
}

// FormatColor is the inverse of ParseColor
func FormatColor(c terminal.Color) string {
	for _, n := range colorNames {
		if n.color == c {
			return n.name
		}
	}
	if r, g, b, ok := c.RGB(); ok {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	idx, _ := c.Index()
	return strconv.Itoa(int(idx))
}

// colorValue sets one color of a style
type colorValue struct {
	dst *terminal.Color
	set *bool
}

func (v colorValue) String() string {
	if v.dst == nil || v.set == nil || !*v.set {
		return ""
	}
	return FormatColor(*v.dst)
}

func (v colorValue) Set(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	*v.dst, *v.set = c, true
	return nil
}

func (colorValue) Type() string { return "color" }

// colorListValue appends to a list of colors; repeatable and comma separated
type colorListValue struct {
	dst *[]terminal.Color
}

func (v colorListValue) String() string {
	if v.dst == nil {
		return ""
	}
	names := make([]string, len(*v.dst))
	for i, c := range *v.dst {
		names[i] = FormatColor(c)
	}
	return strings.Join(names, ",")
}

func (v colorListValue) Set(s string) error {
	for _, part := range splitList(s) {
		c, err := ParseColor(part)
		if err != nil {
			return err
		}
		*v.dst = append(*v.dst, c)
	}
	return nil
}

func (colorListValue) Type() string { return "colors" }

var modifierNames = []struct {
	name string
	attr terminal.Attr
}{
	{"bold", terminal.AttrBold},
	{"dim", terminal.AttrDim},
	{"italic", terminal.AttrItalic},
	{"underlined", terminal.AttrUnderline},
	{"slow-blink", terminal.AttrBlink},
	{"rapid-blink", terminal.AttrRapidBlink},
	{"reversed", terminal.AttrReverse},
	{"hidden", terminal.AttrHidden},
	{"crossed-out", terminal.AttrStrikethrough},
}

// ParseModifier maps a modifier name to its attribute bit
func ParseModifier(s string) (terminal.Attr, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, m := range modifierNames {
		if m.name == in {
			return m.attr, nil
		}
	}
	return terminal.AttrNone, invalid("modifier", s)
}

// modifierValue ORs modifiers into an attribute mask
type modifierValue struct {
	dst *terminal.Attr
}

func (v modifierValue) String() string {
	if v.dst == nil {
		return ""
	}
	var names []string
	for _, m := range modifierNames {
		if *v.dst&m.attr != 0 {
			names = append(names, m.name)
		}
	}
	return strings.Join(names, ",")
}

func (v modifierValue) Set(s string) error {
	for _, part := range splitList(s) {
		a, err := ParseModifier(part)
		if err != nil {
			return err
		}
		*v.dst |= a
	}
	return nil
}

func (modifierValue) Type() string { return "modifiers" }

var alignmentNames = [...]string{
	tui.AlignLeft:   "left",
	tui.AlignCenter: "center",
	tui.AlignRight:  "right",
}

type alignmentValue struct {
	dst *tui.Alignment
}

func (v alignmentValue) String() string {
	if v.dst == nil || int(*v.dst) >= len(alignmentNames) {
		return ""
	}
	return alignmentNames[*v.dst]
}

func (v alignmentValue) Set(s string) error {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, name := range alignmentNames {
		if name == in {
			*v.dst = tui.Alignment(i)
			return nil
		}
	}
	return invalid("alignment", s)
}

func (alignmentValue) Type() string { return "alignment" }

var borderNames = []struct {
	name  string
	sides tui.Borders
}{
	{"top", tui.BorderTop},
	{"right", tui.BorderRight},
	{"bottom", tui.BorderBottom},
	{"left", tui.BorderLeft},
	{"all", tui.BorderAll},
}

// bordersValue ORs border sides together
type bordersValue struct {
	dst *tui.Borders
}

func (v bordersValue) String() string {
	if v.dst == nil {
		return ""
	}
	if *v.dst == tui.BorderAll {
		return "all"
	}
	var names []string
	for _, b := range borderNames[:4] {
		if v.dst.Has(b.sides) {
			names = append(names, b.name)
		}
	}
	return strings.Join(names, ",")
}

func (v bordersValue) Set(s string) error {
	for _, part := range splitList(s) {
		in := strings.ToLower(part)
		found := false
		for _, b := range borderNames {
			if b.name == in {
				*v.dst |= b.sides
				found = true
				break
			}
		}
		if !found {
			return invalid("border", part)
		}
	}
	return nil
}

func (bordersValue) Type() string { return "borders" }

var borderTypeNames = [...]string{
	tui.LineSingle:  "plain",
	tui.LineDouble:  "double",
	tui.LineRounded: "rounded",
	tui.LineHeavy:   "thick",
}

type borderTypeValue struct {
	dst *tui.LineType
}

func (v borderTypeValue) String() string {
	if v.dst == nil || int(*v.dst) >= len(borderTypeNames) {
		return ""
	}
	return borderTypeNames[*v.dst]
}

func (v borderTypeValue) Set(s string) error {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, name := range borderTypeNames {
		if name == in {
			*v.dst = tui.LineType(i)
			return nil
		}
	}
	return invalid("border type", s)
}

func (borderTypeValue) Type() string { return "border-type" }

// Bounds is an axis value range
type Bounds struct {
	Min, Max float64
}

// ParseBounds reads "min..max"; min must be below max
func ParseBounds(s string) (Bounds, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "..")
	if !ok {
		return Bounds{}, invalid("bounds", s)
	}
	minV, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return Bounds{}, invalid("bounds", s)
	}
	maxV, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return Bounds{}, invalid("bounds", s)
	}
	if !(minV < maxV) {
		return Bounds{}, invalid("bounds", s)
	}
	return Bounds{Min: minV, Max: maxV}, nil
}

func (b Bounds) String() string {
	return formatFloat(b.Min) + ".." + formatFloat(b.Max)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type boundsValue struct {
	dst *Bounds
}

func (v boundsValue) String() string {
	if v.dst == nil {
		return ""
	}
	return v.dst.String()
}

func (v boundsValue) Set(s string) error {
	b, err := ParseBounds(s)
	if err != nil {
		return err
	}
	*v.dst = b
	return nil
}

func (boundsValue) Type() string { return "min..max" }
