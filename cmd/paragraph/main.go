// paragraph shows the latest record as text in the terminal.
//
//	while true; do date; printf '\0'; sleep 1; done | paragraph --alignment center --block --block-border all
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/pipeview/app"
	"github.com/lixenwraith/pipeview/widget"
)

func main() {
	if err := app.Run("paragraph", "display text input as a terminal paragraph",
		widget.NewParagraph(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "paragraph: %v\n", err)
		os.Exit(app.ExitCode(err))
	}
}
