// ABOUTME: Presenter is the rendering collaborator consumed by the controller.
// ABOUTME: The controller issues commands and never reads back from the rendered surface.

package widget

import "github.com/mind13/coffeesip/conversation"

// Presenter renders controller state into visible output. Implementations
// own all markup concerns: markdown conversion for bot-authored text and
// escaping for user-authored text happen behind this interface.
//
// The controller calls Presenter methods from whichever goroutine invoked
// the public operation; implementations needing serialization must provide
// their own.
type Presenter interface {
	// Attach prepares the rendering surface. Called once during construction.
	Attach() error

	// Detach releases all rendering resources. Called from Destroy.
	Detach()

	// RenderMessage displays one transcript entry.
	RenderMessage(msg conversation.Message)

	// ShowPending displays the transient typing indicator. Not part of the
	// transcript; never persisted.
	ShowPending()

	// HidePending removes the typing indicator.
	HidePending()

	// SetOpenState reflects the open/closed state of the chat panel.
	SetOpenState(open bool)

	// ApplyTheme applies visual configuration. accentColor may be empty.
	ApplyTheme(theme Theme, position Position, accentColor string)
}
