// Package widget holds the render callbacks drawn by the main loop: a
// paragraph of text and a line chart, each optionally framed by a block.
//
// Widgets are configured through pflag: AddFlags registers every option of a
// widget on a flag set, and the flag values write straight into the widget's
// fields. Draw binds a widget to the shared buffer and returns the draw
// function handed to the loop.
package widget
