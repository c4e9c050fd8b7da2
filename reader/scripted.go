package reader

import (
	"context"
	"io"
)

// Scripted replays a fixed sequence of lines and errors. Used by loop
// tests in place of a terminal.
type Scripted struct {
	events []lineEvent
	pos    int

	// History records every AppendHistory call in order.
	History []string
}

// NewScripted creates a scripted source that yields the given lines and
// then end of input.
func NewScripted(lines ...string) *Scripted {
	s := &Scripted{}
	for _, l := range lines {
		s.events = append(s.events, lineEvent{text: l})
	}
	return s
}

// QueueError appends a read failure to the script.
func (s *Scripted) QueueError(err error) *Scripted {
	s.events = append(s.events, lineEvent{err: err})
	return s
}

// QueueLine appends another line after any queued errors.
func (s *Scripted) QueueLine(line string) *Scripted {
	s.events = append(s.events, lineEvent{text: line})
	return s
}

// QueueInterrupt appends an interrupt signal to the script.
func (s *Scripted) QueueInterrupt() *Scripted {
	return s.QueueError(ErrInterrupted)
}

// ReadLine returns the next scripted event, then io.EOF.
func (s *Scripted) ReadLine(context.Context) (string, error) {
	if s.pos >= len(s.events) {
		return "", io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev.text, ev.err
}

// AppendHistory records the line.
func (s *Scripted) AppendHistory(line string) {
	s.History = append(s.History, line)
}

// Verify Scripted implements LineSource.
var _ LineSource = (*Scripted)(nil)
