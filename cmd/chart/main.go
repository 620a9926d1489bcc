// chart plots numeric records as line graphs in the terminal.
//
// Each record is read line by line; a line of the form "value[\tname]" adds a
// point to the dataset of that line:
//
//	while true; do printf '%s\tload\0' "$(cut -d' ' -f1 /proc/loadavg)"; sleep 1; done | chart --y-axis-bounds 0..4
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/pipeview/app"
	"github.com/lixenwraith/pipeview/widget"
)

func main() {
	if err := app.Run("chart", "display text input as a terminal chart",
		widget.NewChart(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "chart: %v\n", err)
		os.Exit(app.ExitCode(err))
	}
}
