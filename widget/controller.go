// ABOUTME: Widget controller - conversation state, open/closed machine, send pipeline.
// ABOUTME: Enforces at most one in-flight send; failures become visible transcript entries.

package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mind13/coffeesip/conversation"
	"github.com/mind13/coffeesip/session"
	"github.com/mind13/coffeesip/transport"
)

// errorReplyPrefix is prepended to the failure detail shown in the
// transcript. The user is always told something went wrong, never left silent.
const errorReplyPrefix = "Sorry, I encountered an error: "

// ErrSendInFlight is returned when Send is invoked while a previous send is
// still awaiting its response. The attempt is dropped: nothing is appended
// and no callback fires.
var ErrSendInFlight = errors.New("send already in flight")

// ErrDestroyed is returned by operations on a destroyed controller.
var ErrDestroyed = errors.New("controller destroyed")

// UIState is the controller-owned view state the presenter renders from.
// The controller never reads back from the rendered surface.
type UIState struct {
	IsOpen      bool
	InputLocked bool
}

// Controller orchestrates the chat widget: it owns the transcript, the UI
// state machine, the send pipeline, and the session identity lifecycle.
// One controller drives one presentation surface; instances share nothing.
type Controller struct {
	mu         sync.Mutex
	cfg        Config
	ui         UIState
	themeDirty bool
	destroyed  bool

	transcript *conversation.Log
	sessions   *session.Provider
	client     *transport.Client
	presenter  Presenter
	logger     *slog.Logger
}

// New constructs a controller, attaches the presenter, and seeds the
// transcript with the welcome message. The welcome message is always the
// first entry and is bot-authored.
func New(cfg Config, presenter Presenter) (*Controller, error) {
	cfg = cfg.withDefaults()

	c := &Controller{
		cfg:        cfg,
		transcript: conversation.NewLog(),
		sessions:   session.NewProvider(cfg.SessionStore, cfg.Logger),
		presenter:  presenter,
		logger:     cfg.Logger.With("component", "widget"),
	}
	c.client = transport.New(transport.Options{
		Endpoint:    cfg.Endpoint,
		APIKey:      cfg.APIKey,
		ChatbotUUID: cfg.ChatbotUUID,
		HTTPClient:  cfg.HTTPClient,
		Logger:      cfg.Logger,
	})

	if err := presenter.Attach(); err != nil {
		return nil, fmt.Errorf("attaching presenter: %w", err)
	}
	presenter.ApplyTheme(cfg.Theme, cfg.Position, cfg.AccentColor)

	welcome := conversation.NewMessage(cfg.WelcomeMessage, conversation.SenderBot)
	c.transcript.Append(welcome)
	presenter.RenderMessage(welcome)

	return c, nil
}

// Send runs the send pipeline for one user-submitted input. It blocks until
// the backend response (or failure) has been appended; callers wanting a
// non-blocking submit run it on their own goroutine. Empty or
// whitespace-only input is dropped silently with a nil return.
func (c *Controller) Send(ctx context.Context, raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return ErrDestroyed
	}
	if c.ui.InputLocked {
		c.mu.Unlock()
		c.logger.Debug("send dropped, previous send still in flight")
		return ErrSendInFlight
	}
	c.ui.InputLocked = true
	onSend := c.cfg.Callbacks.OnMessageSend
	onReceive := c.cfg.Callbacks.OnMessageReceive
	c.mu.Unlock()

	userMsg := conversation.NewMessage(text, conversation.SenderUser)
	c.transcript.Append(userMsg)
	c.presenter.RenderMessage(userMsg)
	if onSend != nil {
		onSend(text)
	}

	c.presenter.ShowPending()
	result := c.client.Send(ctx, c.sessions.GetOrCreate(), text)
	c.presenter.HidePending()

	botText := result.Text
	if !result.OK {
		botText = errorReplyPrefix + result.ErrorDetail
		c.logger.Warn("send failed", "detail", result.ErrorDetail)
	}
	botMsg := conversation.NewMessage(botText, conversation.SenderBot)
	c.transcript.Append(botMsg)
	c.presenter.RenderMessage(botMsg)

	if result.OK && onReceive != nil {
		onReceive(result.Text)
	}

	c.mu.Lock()
	c.ui.InputLocked = false
	c.mu.Unlock()
	return nil
}

// Open transitions the panel to open. A no-op when already open or destroyed.
func (c *Controller) Open() {
	c.mu.Lock()
	if c.destroyed || c.ui.IsOpen {
		c.mu.Unlock()
		return
	}
	c.ui.IsOpen = true
	reapply := c.themeDirty
	c.themeDirty = false
	theme, position, accent := c.cfg.Theme, c.cfg.Position, c.cfg.AccentColor
	onOpen := c.cfg.Callbacks.OnOpen
	c.mu.Unlock()

	if reapply {
		c.presenter.ApplyTheme(theme, position, accent)
	}
	c.presenter.SetOpenState(true)
	if onOpen != nil {
		onOpen()
	}
}

// Close transitions the panel to closed. A no-op when already closed or
// destroyed.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.destroyed || !c.ui.IsOpen {
		c.mu.Unlock()
		return
	}
	c.ui.IsOpen = false
	onClose := c.cfg.Callbacks.OnClose
	c.mu.Unlock()

	c.presenter.SetOpenState(false)
	if onClose != nil {
		onClose()
	}
}

// Toggle flips between open and closed.
func (c *Controller) Toggle() {
	c.mu.Lock()
	open := c.ui.IsOpen
	c.mu.Unlock()
	if open {
		c.Close()
	} else {
		c.Open()
	}
}

// Messages returns a snapshot of the transcript in insertion order.
func (c *Controller) Messages() []conversation.Message {
	return c.transcript.All()
}

// ClearMessages discards the transcript. No welcome message is re-inserted.
func (c *Controller) ClearMessages() {
	c.mu.Lock()
	destroyed := c.destroyed
	c.mu.Unlock()
	if destroyed {
		return
	}
	c.transcript.Clear()
}

// UpdateConfig merges a partial configuration into the live one.
// Transport-relevant fields propagate to the transport immediately; theme
// fields take effect on the next open transition.
func (c *Controller) UpdateConfig(update ConfigUpdate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}

	if update.Endpoint != nil {
		c.cfg.Endpoint = *update.Endpoint
	}
	if update.APIKey != nil {
		c.cfg.APIKey = *update.APIKey
	}
	if update.ChatbotUUID != nil {
		c.cfg.ChatbotUUID = *update.ChatbotUUID
	}
	if update.Theme != nil {
		c.cfg.Theme = *update.Theme
		c.themeDirty = true
	}
	if update.Position != nil {
		c.cfg.Position = *update.Position
		c.themeDirty = true
	}
	if update.AccentColor != nil {
		c.cfg.AccentColor = *update.AccentColor
		c.themeDirty = true
	}
	if update.WelcomeMessage != nil {
		c.cfg.WelcomeMessage = *update.WelcomeMessage
	}

	if update.touchesTransport() {
		c.client.Update(transport.Options{
			Endpoint:    c.cfg.Endpoint,
			APIKey:      c.cfg.APIKey,
			ChatbotUUID: c.cfg.ChatbotUUID,
		})
	}
}

// SessionToken returns the current session token, creating one if needed.
func (c *Controller) SessionToken() string {
	return c.sessions.GetOrCreate()
}

// ResetSession starts a logically new backend conversation and returns the
// fresh token. The transcript is left untouched.
func (c *Controller) ResetSession() string {
	return c.sessions.Reset()
}

// State returns a snapshot of the UI state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ui
}

// Destroy releases the presentation surface and the transcript. Idempotent;
// calling it on an already-destroyed controller does nothing.
func (c *Controller) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	c.ui = UIState{}
	c.mu.Unlock()

	c.transcript.Clear()
	c.presenter.Detach()
}
