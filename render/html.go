// ABOUTME: Buffer-backed HTML presenter mirroring the original browser widget markup.
// ABOUTME: Bot text runs through goldmark markdown; user text is escaped verbatim.

package render

import (
	"bytes"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"sync"

	"github.com/yuin/goldmark"

	"github.com/mind13/coffeesip/conversation"
	"github.com/mind13/coffeesip/widget"
)

// HTMLPresenter renders controller commands into an embeddable HTML fragment.
// Hosts call HTML() for the current markup; every controller command mutates
// the snapshot that the next HTML() call returns.
type HTMLPresenter struct {
	mu       sync.Mutex
	md       goldmark.Markdown
	logger   *slog.Logger
	attached bool
	open     bool
	pending  bool
	theme    widget.Theme
	position widget.Position
	accent   string
	bubbles  []string
}

// NewHTMLPresenter creates an unattached HTML presenter. A nil logger falls
// back to slog.Default().
func NewHTMLPresenter(logger *slog.Logger) *HTMLPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTMLPresenter{
		md:     goldmark.New(),
		logger: logger.With("component", "render"),
	}
}

func (p *HTMLPresenter) Attach() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attached = true
	return nil
}

// Detach releases all rendered output. A subsequent HTML() returns empty.
func (p *HTMLPresenter) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attached = false
	p.open = false
	p.pending = false
	p.bubbles = nil
}

func (p *HTMLPresenter) RenderMessage(msg conversation.Message) {
	body := p.renderBody(msg)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bubbles = append(p.bubbles, fmt.Sprintf(
		`<div class="coffee-sip-message %s"><div class="coffee-sip-message-bubble">%s</div><div class="coffee-sip-message-time">%s</div></div>`,
		msg.Sender, body, msg.Timestamp.Format("15:04")))
}

// renderBody converts message text to HTML. Bot text is markdown; user text
// must never be interpreted as markup.
func (p *HTMLPresenter) renderBody(msg conversation.Message) string {
	if msg.Sender != conversation.SenderBot {
		return html.EscapeString(msg.Text)
	}
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(msg.Text), &buf); err != nil {
		p.logger.Warn("markdown conversion failed, falling back to escaped text", "error", err)
		return html.EscapeString(msg.Text)
	}
	return strings.TrimSpace(buf.String())
}

func (p *HTMLPresenter) ShowPending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = true
}

func (p *HTMLPresenter) HidePending() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = false
}

func (p *HTMLPresenter) SetOpenState(open bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = open
}

func (p *HTMLPresenter) ApplyTheme(theme widget.Theme, position widget.Position, accent string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
	p.position = position
	p.accent = accent
}

// HTML returns the current widget markup, or an empty string when detached.
func (p *HTMLPresenter) HTML() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.attached {
		return ""
	}

	var b strings.Builder
	b.WriteString("<style>")
	b.WriteString(widgetStyles)
	if p.accent != "" {
		fmt.Fprintf(&b, ".coffee-sip-widget { --cs-primary-color: %s; }", html.EscapeString(p.accent))
	}
	b.WriteString("</style>")

	fmt.Fprintf(&b, `<div class="coffee-sip-widget theme-%s position-%s">`, p.theme, p.position)
	windowClass := "coffee-sip-chat-window"
	if p.open {
		windowClass += " open"
	}
	fmt.Fprintf(&b, `<div class="%s"><div class="coffee-sip-messages">`, windowClass)
	for _, bubble := range p.bubbles {
		b.WriteString(bubble)
	}
	if p.pending {
		b.WriteString(`<div class="coffee-sip-message bot coffee-sip-typing">` +
			`<div class="coffee-sip-typing-dot"></div><div class="coffee-sip-typing-dot"></div><div class="coffee-sip-typing-dot"></div></div>`)
	}
	b.WriteString("</div></div></div>")
	return b.String()
}
