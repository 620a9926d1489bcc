// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the render loop.
//
// Features:
//   - Input, raw mode and sizing on the controlling tty, so records can be piped on stdin
//   - Frames and control sequences written to any sink (stdout or an appended file)
//   - True color (24-bit), 256-color and basic 16-color output
//   - Double-buffered output with cell-level diffing
//   - Raw input parsing with escape sequence handling, SIGWINCH resize events
//   - Best-effort restoration on exit or crash
//
// Lifecycle steps are separate calls so the caller controls their order:
//
//	t, _ := terminal.Open(os.Stdout)
//	t.HideCursor(); t.EnterAlternateScreen(); t.EnableRawMode()
//	...
//	t.DisableRawMode(); t.LeaveAlternateScreen(); t.ShowCursor()
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
