// ABOUTME: Tests for CLI configuration loading.
// ABOUTME: Validates YAML and TOML parsing, env expansion, defaults, and validation.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validYAML = `
widget:
  endpoint: https://chat.example.com
  api_key: secret-key
  chatbot_uuid: bot-123
  theme: dark
session:
  store: memory
logging:
  level: debug
`

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "config.yaml", validYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://chat.example.com", cfg.Widget.Endpoint)
	assert.Equal(t, "secret-key", cfg.Widget.APIKey)
	assert.Equal(t, "bot-123", cfg.Widget.ChatbotUUID)
	assert.Equal(t, "dark", cfg.Widget.Theme)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_TOML(t *testing.T) {
	content := `
[widget]
endpoint = "https://chat.example.com"
api_key = "secret-key"
chatbot_uuid = "bot-123"

[session]
store = "memory"
`
	cfg, err := Load(writeConfig(t, "config.toml", content))
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com", cfg.Widget.Endpoint)
	assert.Equal(t, "memory", cfg.Session.Store)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("COFFEESIP_TEST_KEY", "from-env")

	content := `
widget:
  endpoint: https://chat.example.com
  api_key: ${COFFEESIP_TEST_KEY}
  chatbot_uuid: bot-123
session:
  store: memory
`
	cfg, err := Load(writeConfig(t, "config.yaml", content))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Widget.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	content := `
widget:
  endpoint: https://chat.example.com
  api_key: k
  chatbot_uuid: b
session:
  path: /tmp/session.json
`
	cfg, err := Load(writeConfig(t, "config.yaml", content))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Session.Store)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "config.ini", "whatever"))
	assert.ErrorContains(t, err, "unsupported config extension")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing endpoint", func(c *Config) { c.Widget.Endpoint = "" }, "widget.endpoint"},
		{"missing api key", func(c *Config) { c.Widget.APIKey = "" }, "widget.api_key"},
		{"missing chatbot uuid", func(c *Config) { c.Widget.ChatbotUUID = "" }, "widget.chatbot_uuid"},
		{"file store without path", func(c *Config) { c.Session.Store = "file"; c.Session.Path = "" }, "session.path"},
		{"unknown store", func(c *Config) { c.Session.Store = "redis" }, "unknown session.store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Widget: WidgetConfig{
					Endpoint:    "https://x",
					APIKey:      "k",
					ChatbotUUID: "b",
				},
				Session: SessionConfig{Store: "memory"},
			}
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
