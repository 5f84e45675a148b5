// Package coffeesip is an embeddable chat widget core: a conversation
// transcript, an open/closed widget state machine, and an HTTP transport to
// the mind13 chat backend, rendered through a pluggable presenter.
//
// # Overview
//
// The package-level Init/Instance/Shutdown functions emulate the one-widget-
// at-a-time convenience surface of the original browser widget. Hosts that
// want explicit ownership construct widget.Controller values directly; the
// core itself carries no global state.
//
// # Usage
//
//	presenter := render.NewHTMLPresenter(nil)
//	ctrl, err := coffeesip.Init(coffeesip.Config{
//		Endpoint:    "https://chat.example.com",
//		APIKey:      "…",
//		ChatbotUUID: "…",
//	}, presenter)
//	if err != nil {
//		return err
//	}
//	defer coffeesip.Shutdown()
//
//	ctrl.Open()
//	_ = ctrl.Send(ctx, "hello")
package coffeesip
