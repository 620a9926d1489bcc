package widget

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/terminal/tui"
)

// Block frames a widget with borders and a title
type Block struct {
	Enabled    bool
	Title      string
	TitleAlign tui.Alignment
	Borders    tui.Borders
	BorderType tui.LineType
	Style      tui.Style
	BorderSt   tui.Style
}

// AddFlags registers the block options
func (b *Block) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&b.Enabled, "block", b.Enabled, "draw inside a block")
	fs.StringVar(&b.Title, "block-title", b.Title, "title at the top of the block")
	fs.Var(alignmentValue{&b.TitleAlign}, "block-title-alignment", "block title alignment: left, center, right")
	fs.Var(bordersValue{&b.Borders}, "block-border", "block border sides: top, right, bottom, left, all (repeatable)")
	fs.Var(borderTypeValue{&b.BorderType}, "block-border-type", "block border characters: plain, rounded, double, thick")
	addStyleFlags(fs, "block", "block", &b.Style)
	addStyleFlags(fs, "block-border", "block border", &b.BorderSt)
}

// Render draws the block into r and returns the area left for content
// A disabled block returns r untouched
func (b *Block) Render(r tui.Region) tui.Region {
	if !b.Enabled || r.Empty() {
		return r
	}

	r.SetStyle(b.Style)
	r.Box(b.Borders, b.BorderType, b.BorderSt)
	inner := r.Inner(b.Borders)

	if b.Title == "" {
		return inner
	}

	// Title sits on the top row between the side borders
	left, right := 0, r.W
	if b.Borders.Has(tui.BorderLeft) {
		left++
	}
	if b.Borders.Has(tui.BorderRight) {
		right--
	}
	if right > left {
		title := tui.Truncate(ansi.Strip(b.Title), right-left)
		x := left + b.TitleAlign.Offset(tui.StringWidth(title), right-left)
		r.Text(x, 0, title, tui.NewStyle())
	}

	if !b.Borders.Has(tui.BorderTop) {
		inner = inner.Sub(0, 1, inner.W, inner.H-1)
	}
	return inner
}
