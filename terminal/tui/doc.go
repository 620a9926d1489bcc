// Package tui provides immediate-mode drawing primitives over a terminal cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Styles layer: drawing a cell patches its existing colors and attributes rather
// than replacing them, so a block style painted first shows through text drawn later.
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.SetStyle(tui.NewStyle().WithBg(terminal.ColorBlue))
//
//	root.Box(tui.BorderAll, tui.LineRounded, borderStyle)
//	inner := root.Inner(tui.BorderAll)
//	inner.Text(0, 0, "Hello", tui.NewStyle())
//
//	term.Flush(cells, w, h)
package tui
