// ABOUTME: Tests for the append-only transcript log.
// ABOUTME: Validates insertion order, snapshot isolation, and clear semantics.

package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_AppendPreservesOrder(t *testing.T) {
	log := NewLog()

	log.Append(NewMessage("first", SenderBot))
	log.Append(NewMessage("second", SenderUser))
	log.Append(NewMessage("third", SenderBot))

	msgs := log.All()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Text)
	assert.Equal(t, "second", msgs[1].Text)
	assert.Equal(t, "third", msgs[2].Text)
	assert.Equal(t, SenderBot, msgs[0].Sender)
	assert.Equal(t, SenderUser, msgs[1].Sender)
}

func TestLog_AppendDoesNotDeduplicate(t *testing.T) {
	log := NewLog()
	msg := NewMessage("same", SenderUser)

	log.Append(msg)
	log.Append(msg)

	assert.Equal(t, 2, log.Len())
}

func TestLog_AllReturnsSnapshot(t *testing.T) {
	log := NewLog()
	log.Append(NewMessage("original", SenderBot))

	snapshot := log.All()
	snapshot[0].Text = "mutated"

	assert.Equal(t, "original", log.All()[0].Text)
}

func TestLog_AllEmptyLog(t *testing.T) {
	log := NewLog()
	assert.Empty(t, log.All())
	assert.Equal(t, 0, log.Len())
}

func TestLog_Clear(t *testing.T) {
	log := NewLog()
	log.Append(NewMessage("one", SenderUser))
	log.Append(NewMessage("two", SenderBot))

	log.Clear()

	assert.Empty(t, log.All())
	assert.Equal(t, 0, log.Len())
}

func TestLog_ClearEmptyLog(t *testing.T) {
	log := NewLog()
	log.Clear()
	assert.Empty(t, log.All())
}

func TestNewMessage_StampsIDAndTimestamp(t *testing.T) {
	msg := NewMessage("hello", SenderUser)

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, SenderUser, msg.Sender)
}
