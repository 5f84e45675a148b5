// Package config loads the coffeesip-chat CLI configuration.
//
// # Overview
//
// Configuration files are YAML or TOML, selected by file extension.
// ${VAR_NAME} patterns in the raw file are expanded from the environment
// before parsing, so credentials can stay out of the file itself.
//
// The widget core deliberately performs no validation of its own; the CLI
// validates here so a missing endpoint fails at startup instead of as a
// transport error on the first send.
package config
