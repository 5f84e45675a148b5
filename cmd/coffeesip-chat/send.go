// ABOUTME: One-shot send command for scripting and smoke-testing a backend.
// ABOUTME: Prints the bot reply (or the visible error entry) and exits.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind13/coffeesip/conversation"
	"github.com/mind13/coffeesip/render"
	"github.com/mind13/coffeesip/widget"
)

// silentPresenter satisfies the Presenter interface without producing
// output; the send command prints the reply itself.
type silentPresenter struct{}

func (silentPresenter) Attach() error                                    { return nil }
func (silentPresenter) Detach()                                          {}
func (silentPresenter) RenderMessage(conversation.Message)               {}
func (silentPresenter) ShowPending()                                     {}
func (silentPresenter) HidePending()                                     {}
func (silentPresenter) SetOpenState(bool)                                {}
func (silentPresenter) ApplyTheme(widget.Theme, widget.Position, string) {}

var _ widget.Presenter = silentPresenter{}
var _ widget.Presenter = (*render.TerminalPresenter)(nil)

func newSendCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a single message and print the reply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd.Context(), message)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text (required)")
	cmd.MarkFlagRequired("message")
	return cmd
}

func runSend(ctx context.Context, message string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := buildSessionStore(cfg.Session)
	if err != nil {
		return err
	}
	defer closeStore()

	ctrl, err := widget.New(widgetConfig(cfg, store, discardLogger()), silentPresenter{})
	if err != nil {
		return fmt.Errorf("creating widget: %w", err)
	}
	defer ctrl.Destroy()

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctrl.Send(ctx, message); err != nil {
		return err
	}

	msgs := ctrl.Messages()
	if len(msgs) == 0 {
		return fmt.Errorf("no reply recorded")
	}
	fmt.Println(msgs[len(msgs)-1].Text)
	return nil
}
