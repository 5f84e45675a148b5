// ABOUTME: Widget configuration, callbacks, and the partial-update type.
// ABOUTME: The core does not pre-validate; a bad endpoint surfaces on first send.

package widget

import (
	"log/slog"
	"net/http"

	"github.com/mind13/coffeesip/session"
)

// Theme selects the widget color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Position anchors the widget in the host surface.
type Position string

const (
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
)

// DefaultWelcomeMessage greets the user when no welcome text is configured.
const DefaultWelcomeMessage = "Hello! How can I help you today?"

// Callbacks are plain notification slots invoked by the controller. All are
// optional. Transition callbacks fire exactly once per actual transition;
// message callbacks receive the trimmed user text and the reply text.
type Callbacks struct {
	OnOpen           func()
	OnClose          func()
	OnMessageSend    func(message string)
	OnMessageReceive func(message string)
}

// Config is supplied at construction. Endpoint, APIKey, and ChatbotUUID are
// required for sends to succeed but are deliberately not validated here;
// an invalid configuration shows up as a transport failure in the transcript.
type Config struct {
	Endpoint    string
	APIKey      string
	ChatbotUUID string

	Theme          Theme
	Position       Position
	AccentColor    string
	WelcomeMessage string
	Callbacks      Callbacks

	// SessionStore persists the session token across host restarts. Optional;
	// defaults to an in-memory store (a fresh conversation per process).
	SessionStore session.Store

	// HTTPClient overrides the transport's HTTP layer. Optional.
	HTTPClient *http.Client

	// Logger receives diagnostics. Optional; defaults to slog.Default().
	Logger *slog.Logger
}

// withDefaults fills in the zero-valued optional fields.
func (c Config) withDefaults() Config {
	if c.Theme == "" {
		c.Theme = ThemeLight
	}
	if c.Position == "" {
		c.Position = PositionBottomRight
	}
	if c.WelcomeMessage == "" {
		c.WelcomeMessage = DefaultWelcomeMessage
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// ConfigUpdate is a partial configuration merged by UpdateConfig. Nil fields
// are left unchanged. Transport-relevant fields take effect immediately;
// theme fields take effect on the next render.
type ConfigUpdate struct {
	Endpoint    *string
	APIKey      *string
	ChatbotUUID *string

	Theme          *Theme
	Position       *Position
	AccentColor    *string
	WelcomeMessage *string
}

// touchesTransport reports whether the update changes any field the
// transport client cares about.
func (u ConfigUpdate) touchesTransport() bool {
	return u.Endpoint != nil || u.APIKey != nil || u.ChatbotUUID != nil
}
