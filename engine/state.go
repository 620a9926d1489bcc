package engine

import "github.com/lixenwraith/pipeview/terminal"

// State is the main loop lifecycle stage
type State uint8

const (
	StateInitializing State = iota
	StateRunning
	StateFinalizing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateFinalizing:
		return "finalizing"
	case StateTerminated:
		return "terminated"
	}
	return "unknown"
}

// IsCancel reports whether ev is the cancellation chord, Ctrl+C
// Raw terminals deliver it as KeyCtrlC, others as 'c' with the Ctrl modifier
func IsCancel(ev terminal.Event) bool {
	if ev.Type != terminal.EventKey {
		return false
	}
	if ev.Key == terminal.KeyCtrlC {
		return true
	}
	return ev.Key == terminal.KeyRune &&
		(ev.Rune == 'c' || ev.Rune == 'C') &&
		ev.Modifiers&terminal.ModCtrl != 0
}
