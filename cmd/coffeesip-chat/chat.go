// ABOUTME: Interactive chat loop and controller wiring for the demo CLI.
// ABOUTME: Slash commands drive the widget lifecycle; plain lines go to the backend.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mind13/coffeesip/config"
	"github.com/mind13/coffeesip/render"
	"github.com/mind13/coffeesip/session"
	"github.com/mind13/coffeesip/widget"
)

const banner = `
             __  __               _
  ___ ___   / _|/ _| ___  ___ ___(_)_ __
 / __/ _ \ | |_| |_ / _ \/ __/ __| | '_ \
| (_| (_) ||  _|  _|  __/\__ \__ \ | |_) |
 \___\___/ |_| |_|  \___||___/___/_| .__/
                                   |_|
`

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat()
		},
	}
}

func runChat() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Logging)

	store, closeStore, err := buildSessionStore(cfg.Session)
	if err != nil {
		return err
	}
	defer closeStore()

	cyan := color.New(color.FgCyan)
	gray := color.New(color.FgHiBlack)
	cyan.Print(banner)
	gray.Printf("    version: %s\n", version)
	gray.Printf("    backend: %s\n\n", cfg.Widget.Endpoint)

	presenter := render.NewTerminalPresenter(os.Stdout)
	ctrl, err := widget.New(widgetConfig(cfg, store, logger), presenter)
	if err != nil {
		return fmt.Errorf("creating widget: %w", err)
	}
	defer ctrl.Destroy()

	ctrl.Open()
	gray.Println("type a message, or /open /close /clear /reset /quit")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/quit", "/exit":
			return nil
		case "/open":
			ctrl.Open()
			continue
		case "/close":
			ctrl.Close()
			continue
		case "/clear":
			ctrl.ClearMessages()
			gray.Println("transcript cleared")
			continue
		case "/reset":
			token := ctrl.ResetSession()
			gray.Printf("new session: %s\n", token)
			continue
		}

		if err := ctrl.Send(ctx, line); err != nil {
			if err == widget.ErrSendInFlight {
				gray.Println("still waiting on the previous message")
				continue
			}
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// widgetConfig maps file configuration onto the widget Config.
func widgetConfig(cfg *config.Config, store session.Store, logger *slog.Logger) widget.Config {
	return widget.Config{
		Endpoint:       cfg.Widget.Endpoint,
		APIKey:         cfg.Widget.APIKey,
		ChatbotUUID:    cfg.Widget.ChatbotUUID,
		Theme:          widget.Theme(cfg.Widget.Theme),
		Position:       widget.Position(cfg.Widget.Position),
		AccentColor:    cfg.Widget.AccentColor,
		WelcomeMessage: cfg.Widget.WelcomeMessage,
		SessionStore:   store,
		Logger:         logger,
	}
}

// buildSessionStore constructs the configured session store. The returned
// func releases it; it is a no-op for stores without resources.
func buildSessionStore(cfg config.SessionConfig) (session.Store, func(), error) {
	switch cfg.Store {
	case "memory":
		return session.NewMemoryStore(), func() {}, nil
	case "file":
		return session.NewFileStore(cfg.Path), func() {}, nil
	case "sqlite":
		store, err := session.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening session database: %w", err)
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// discardLogger silences diagnostics for one-shot commands.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
