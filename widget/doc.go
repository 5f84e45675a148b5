// Package widget implements the chat widget session controller.
//
// # Overview
//
// The Controller owns everything with real invariants: the ordered
// conversation transcript, the open/closed UI state machine, the send
// pipeline with its single-in-flight guarantee, and the session identity
// shared with the backend. Rendering is delegated to a Presenter, an external
// collaborator that receives commands and never originates state.
//
// # Send pipeline
//
// Send trims the input, appends the user message, locks input, shows the
// pending indicator, performs the one network exchange, and appends either
// the reply or a visible error message before unlocking. A second Send while
// one is in flight is dropped and reported as ErrSendInFlight; it appends
// nothing and invokes no callback.
//
// # Lifecycle
//
//	ctrl, err := widget.New(cfg, presenter)
//	ctrl.Open()
//	err = ctrl.Send(ctx, "  hello  ") // appends "hello" and the bot reply
//	ctrl.Destroy()                   // idempotent
package widget
