package testutil

import "sync"

// EventLog records, in order, what scripted collaborators were asked to do.
// A Prompter and a FaultFS sharing one log show how prompts interleave with
// writes.
type EventLog struct {
	mu     sync.Mutex
	events []string
}

// Add appends one event
func (l *EventLog) Add(event string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

// Events returns a copy of the events recorded so far
func (l *EventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.events))
	copy(out, l.events)
	return out
}
