package widget

import (
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pipeview/terminal/tui"
)

// addStyleFlags registers <prefix>-fg, -bg, -add-modifier and -sub-modifier writing into st
func addStyleFlags(fs *pflag.FlagSet, prefix, what string, st *tui.Style) {
	fs.Var(colorValue{&st.Fg, &st.FgSet}, prefix+"-fg", what+" foreground color")
	fs.Var(colorValue{&st.Bg, &st.BgSet}, prefix+"-bg", what+" background color")
	fs.Var(modifierValue{&st.Add}, prefix+"-add-modifier", what+" modifiers to add")
	fs.Var(modifierValue{&st.Sub}, prefix+"-sub-modifier", what+" modifiers to remove")
}
