// ABOUTME: Writes a starter configuration file for the demo CLI.
// ABOUTME: Refuses to overwrite an existing file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const sampleConfig = `# coffeesip-chat configuration
widget:
  endpoint: https://chat.example.com
  api_key: ${COFFEESIP_API_KEY}
  chatbot_uuid: your-chatbot-uuid
  theme: light            # light or dark
  position: bottom-right  # bottom-right or bottom-left
  # accent_color: "#007bff"
  # welcome_message: "Hello! How can I help you today?"

session:
  store: file             # memory, file, or sqlite
  path: ${HOME}/.local/share/coffeesip/session.json

logging:
  level: info             # debug, info, warn, error
  format: text            # text or json
`

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	path := configPath()

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Edit it with your backend endpoint and credentials, then run: coffeesip-chat chat")
	return nil
}
