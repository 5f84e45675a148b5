// ABOUTME: Line-oriented terminal presenter used by the coffeesip-chat demo CLI.
// ABOUTME: Colors message roles with fatih/color; markdown is passed through as text.

package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/mind13/coffeesip/conversation"
	"github.com/mind13/coffeesip/widget"
)

// TerminalPresenter renders the conversation as colored lines on a writer.
type TerminalPresenter struct {
	mu  sync.Mutex
	w   io.Writer
	bot *color.Color
	you *color.Color
	dim *color.Color
}

// NewTerminalPresenter creates a presenter writing to w.
func NewTerminalPresenter(w io.Writer) *TerminalPresenter {
	return &TerminalPresenter{
		w:   w,
		bot: color.New(color.FgCyan),
		you: color.New(color.FgGreen),
		dim: color.New(color.FgHiBlack),
	}
}

func (p *TerminalPresenter) Attach() error { return nil }

func (p *TerminalPresenter) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dim.Fprintln(p.w, "-- chat closed --")
}

func (p *TerminalPresenter) RenderMessage(msg conversation.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	role := p.bot
	label := "bot"
	if msg.Sender == conversation.SenderUser {
		role = p.you
		label = "you"
	}
	p.dim.Fprintf(p.w, "[%s] ", msg.Timestamp.Format("15:04"))
	role.Fprintf(p.w, "%s> ", label)
	fmt.Fprintln(p.w, msg.Text)
}

func (p *TerminalPresenter) ShowPending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dim.Fprintln(p.w, "bot is typing...")
}

func (p *TerminalPresenter) HidePending() {}

func (p *TerminalPresenter) SetOpenState(open bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if open {
		p.dim.Fprintln(p.w, "-- chat opened --")
	} else {
		p.dim.Fprintln(p.w, "-- chat minimized --")
	}
}

func (p *TerminalPresenter) ApplyTheme(widget.Theme, widget.Position, string) {
	// Terminal output has no theme surface; colors are fixed per role.
}
