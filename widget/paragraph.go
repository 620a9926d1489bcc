package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/engine"
	"github.com/lixenwraith/pipeview/terminal/tui"
)

// Paragraph renders the buffer as text
type Paragraph struct {
	Align   tui.Alignment
	Wrap    bool
	Trim    bool
	ScrollX int
	ScrollY int
	Style   tui.Style
	Block   Block
}

// NewParagraph returns a left aligned, unwrapped paragraph
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// AddFlags registers paragraph and block options
func (p *Paragraph) AddFlags(fs *pflag.FlagSet) {
	fs.VarP(alignmentValue{&p.Align}, "alignment", "a", "text alignment: left, center, right")
	fs.BoolVarP(&p.Wrap, "wrap", "w", p.Wrap, "wrap long lines")
	fs.BoolVarP(&p.Trim, "trim", "t", p.Trim, "trim leading whitespace from wrapped lines")
	fs.IntVarP(&p.ScrollX, "scroll-x", "x", p.ScrollX, "horizontal scroll offset in columns")
	fs.IntVarP(&p.ScrollY, "scroll-y", "y", p.ScrollY, "vertical scroll offset in lines")
	addStyleFlags(fs, "paragraph", "paragraph", &p.Style)
	p.Block.AddFlags(fs)
}

// Draw binds the paragraph to buf
func (p *Paragraph) Draw(buf *engine.Buffer) engine.DrawFunc {
	return func(f *engine.Frame) {
		p.Render(f.Region(), buf.Text())
	}
}

// Lines lays text out for a width, applying wrap and scroll but not alignment
func (p *Paragraph) Lines(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(ansi.Strip(text), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if p.Wrap {
			lines = append(lines, tui.WrapText(line, width, p.Trim)...)
			continue
		}
		lines = append(lines, tui.SkipColumns(line, p.ScrollX))
	}

	if p.ScrollY >= len(lines) {
		return nil
	}
	return lines[max(p.ScrollY, 0):]
}

// Render draws text into r
func (p *Paragraph) Render(r tui.Region, text string) {
	r.SetStyle(p.Style)
	area := p.Block.Render(r)
	if area.Empty() {
		return
	}

	for y, line := range p.Lines(text, area.W) {
		if y >= area.H {
			break
		}
		x := p.Align.Offset(tui.StringWidth(line), area.W)
		area.Text(x, y, line, tui.NewStyle())
	}
}
