package prettui

import "io"

// EventReader reads key events from the terminal.
// ReadEvent blocks until an event is available or the input fails.
type EventReader interface {
	ReadEvent() (KeyEvent, error)
}

// inputReader implements EventReader over a raw-mode input stream.
// A single read may yield several events (e.g. a pasted string or a
// multi-byte escape sequence); extras are queued for subsequent calls.
type inputReader struct {
	in      io.Reader
	buf     []byte
	partial []byte
	pending []KeyEvent
}

// NewEventReader creates an EventReader for the given input stream.
// The stream should already be in raw mode.
func NewEventReader(in io.Reader) EventReader {
	return &inputReader{
		in:  in,
		buf: make([]byte, 256),
	}
}

// ReadEvent returns the next key event, blocking until input arrives.
func (r *inputReader) ReadEvent() (KeyEvent, error) {
	for {
		if len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			return ev, nil
		}

		n, err := r.in.Read(r.buf)
		if err != nil {
			return KeyEvent{}, err
		}
		if n == 0 {
			return KeyEvent{}, io.EOF
		}

		data := r.buf[:n]
		if len(r.partial) > 0 {
			data = append(r.partial, data...)
			r.partial = nil
		}

		events, remaining := parseKeysWithRemainder(data)
		if len(remaining) > 0 {
			r.partial = make([]byte, len(remaining))
			copy(r.partial, remaining)
		}
		r.pending = events
	}
}

// MockEventReader is an EventReader for testing.
// It returns scripted events in order and io.EOF once exhausted.
type MockEventReader struct {
	events []KeyEvent
	index  int
}

// Ensure MockEventReader implements EventReader.
var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a MockEventReader with the given events.
func NewMockEventReader(events ...KeyEvent) *MockEventReader {
	return &MockEventReader{events: events}
}

// ReadEvent returns the next queued event, or io.EOF when all events
// have been consumed.
func (m *MockEventReader) ReadEvent() (KeyEvent, error) {
	if m.index >= len(m.events) {
		return KeyEvent{}, io.EOF
	}
	ev := m.events[m.index]
	m.index++
	return ev, nil
}

// AddEvents adds more events to the queue.
func (m *MockEventReader) AddEvents(events ...KeyEvent) {
	m.events = append(m.events, events...)
}

// Remaining returns the number of events yet to be returned.
func (m *MockEventReader) Remaining() int {
	return len(m.events) - m.index
}
