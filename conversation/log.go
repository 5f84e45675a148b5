// ABOUTME: Append-only transcript log owned by the widget controller.
// ABOUTME: All() returns defensive copies so callers cannot mutate internal state.

package conversation

import "sync"

// Log is an ordered, append-only message transcript. Append is the only
// mutator besides Clear; insertion order is preserved exactly.
type Log struct {
	mu   sync.Mutex
	msgs []Message
}

// NewLog creates an empty transcript.
func NewLog() *Log {
	return &Log{}
}

// Append adds a message to the end of the transcript.
func (l *Log) Append(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

// All returns a snapshot of the transcript in insertion order. The returned
// slice is a copy; mutating it does not affect the log.
func (l *Log) All() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

// Len returns the number of messages in the transcript.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.msgs)
}

// Clear discards every message. It does not re-insert a welcome message;
// that is the controller's concern at initialization only.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = nil
}
