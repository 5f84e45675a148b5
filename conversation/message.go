// ABOUTME: Message type and ID generation for chat transcript entries.
// ABOUTME: IDs are millisecond-clock strings; collisions are tolerated, not fatal.

package conversation

import (
	"strconv"
	"time"
)

// Sender identifies the author of a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single transcript entry. Immutable once created; ordering is
// defined by insertion order in the Log, not by ID or Timestamp.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// NewMessage creates a message stamped with the current time. The ID is
// derived from the millisecond clock and only needs to be unique within one
// conversation lifetime.
func NewMessage(text string, sender Sender) Message {
	now := time.Now()
	return Message{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Text:      text,
		Sender:    sender,
		Timestamp: now,
	}
}
