// ABOUTME: Tests for the terminal presenter line output.
// ABOUTME: Asserts on text content; color codes are disabled on non-tty writers.

package render

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind13/coffeesip/conversation"
)

func init() {
	// Keep assertions on plain text regardless of where tests run
	color.NoColor = true
}

func TestTerminalPresenter_RendersRoleLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)
	require.NoError(t, p.Attach())

	p.RenderMessage(conversation.NewMessage("hi there", conversation.SenderUser))
	p.RenderMessage(conversation.NewMessage("hello!", conversation.SenderBot))

	out := buf.String()
	assert.Contains(t, out, "you> hi there")
	assert.Contains(t, out, "bot> hello!")
}

func TestTerminalPresenter_PendingLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)

	p.ShowPending()
	p.HidePending()

	assert.Contains(t, buf.String(), "bot is typing...")
}

func TestTerminalPresenter_OpenStateLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)

	p.SetOpenState(true)
	p.SetOpenState(false)

	assert.Contains(t, buf.String(), "-- chat opened --")
	assert.Contains(t, buf.String(), "-- chat minimized --")
}

func TestTerminalPresenter_DetachLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPresenter(&buf)

	p.Detach()

	assert.Contains(t, buf.String(), "-- chat closed --")
}
