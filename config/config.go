// ABOUTME: Configuration loading for the coffeesip-chat CLI.
// ABOUTME: YAML or TOML by extension, with environment variable expansion.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the complete CLI configuration.
type Config struct {
	Widget  WidgetConfig  `yaml:"widget" toml:"widget"`
	Session SessionConfig `yaml:"session" toml:"session"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WidgetConfig holds the fields handed to the widget controller.
type WidgetConfig struct {
	Endpoint       string `yaml:"endpoint" toml:"endpoint"`
	APIKey         string `yaml:"api_key" toml:"api_key"`
	ChatbotUUID    string `yaml:"chatbot_uuid" toml:"chatbot_uuid"`
	Theme          string `yaml:"theme" toml:"theme"`
	Position       string `yaml:"position" toml:"position"`
	AccentColor    string `yaml:"accent_color" toml:"accent_color"`
	WelcomeMessage string `yaml:"welcome_message" toml:"welcome_message"`
}

// SessionConfig selects how the session token is persisted.
type SessionConfig struct {
	// Store is one of "memory", "file", or "sqlite". Defaults to "file".
	Store string `yaml:"store" toml:"store"`
	// Path is the file or database location for the durable stores.
	Path string `yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Load reads, expands, parses, and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yaml, .yml, or .toml)", filepath.Ext(path))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Session.Store == "" {
		c.Session.Store = "file"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the fields the CLI cannot run without.
func (c *Config) Validate() error {
	if c.Widget.Endpoint == "" {
		return fmt.Errorf("widget.endpoint is required")
	}
	if c.Widget.APIKey == "" {
		return fmt.Errorf("widget.api_key is required")
	}
	if c.Widget.ChatbotUUID == "" {
		return fmt.Errorf("widget.chatbot_uuid is required")
	}
	switch c.Session.Store {
	case "memory":
	case "file", "sqlite":
		if c.Session.Path == "" {
			return fmt.Errorf("session.path is required for the %s store", c.Session.Store)
		}
	default:
		return fmt.Errorf("unknown session.store %q (want memory, file, or sqlite)", c.Session.Store)
	}
	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable
// values. Unset variables expand to an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(re.FindStringSubmatch(match)[1])
	})
}
