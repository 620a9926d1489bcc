package event

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/pipeview/queue"
	"github.com/lixenwraith/pipeview/terminal"
)

// scriptedPoller returns its events in order, then err forever
type scriptedPoller struct {
	events []terminal.Event
	err    error
}

func (p *scriptedPoller) PollEvent() (terminal.Event, error) {
	if len(p.events) == 0 {
		return terminal.Event{}, p.err
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, nil
}

func TestSpawn_ForwardsEventsThenFails(t *testing.T) {
	pollErr := errors.New("tty closed")
	p := &scriptedPoller{
		events: []terminal.Event{
			{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'},
			{Type: terminal.EventResize, Width: 80, Height: 24},
			{Type: terminal.EventKey, Key: terminal.KeyCtrlC},
		},
		err: pollErr,
	}

	q := queue.New[terminal.Event]()
	fatal := make(chan error, 1)
	Spawn(p, q, WithFatal(func(err error) { fatal <- err }))

	select {
	case err := <-fatal:
		if !errors.Is(err, pollErr) {
			t.Errorf("Expected poll error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for fatal handler")
	}

	want := []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'},
		{Type: terminal.EventResize, Width: 80, Height: 24},
		{Type: terminal.EventKey, Key: terminal.KeyCtrlC},
	}
	for i, w := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("Event %d: queue empty", i)
		}
		if got != w {
			t.Errorf("Event %d: expected %v, got %v", i, w, got)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Expected no events after the error")
	}
}
