package terminal

// Attr represents text attributes (bitmask)
type Attr uint16

const (
	AttrNone          Attr = 0
	AttrBold          Attr = 1 << 0
	AttrDim           Attr = 1 << 1
	AttrItalic        Attr = 1 << 2
	AttrUnderline     Attr = 1 << 3
	AttrBlink         Attr = 1 << 4
	AttrRapidBlink    Attr = 1 << 5
	AttrReverse       Attr = 1 << 6
	AttrHidden        Attr = 1 << 7
	AttrStrikethrough Attr = 1 << 8
)

// sgrAttrs pairs each attribute bit with its SGR parameter, in emission order
var sgrAttrs = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrRapidBlink, '6'},
	{AttrReverse, '7'},
	{AttrHidden, '8'},
	{AttrStrikethrough, '9'},
}

// WideTail marks the cell covered by the right half of a double-width rune
// Output skips it; the rune in the cell to its left already occupies the column
const WideTail rune = -1

// Cell represents a single terminal cell
// A zero Rune renders as a blank
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}
