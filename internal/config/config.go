// Package config provides configuration management for the autocomplete CLI.
// It handles loading the YAML config file, the serialized candidate list
// given on the command line, and environment overrides.
package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnv overrides the configured log level.
const LogLevelEnv = "AUTOCOMPLETE_LOG_LEVEL"

// Config holds the widget configuration.
type Config struct {
	// Prompt is shown before the input text.
	Prompt string

	// Placeholder is shown while the input is empty.
	Placeholder string

	// Label is shown on the line above the input.
	Label string

	// Width caps the rendered width; 0 means the terminal width.
	Width int

	// MarginTop is the number of blank rows above the form.
	MarginTop int

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string

	// Candidates is the list suggestions are drawn from. It is nil when no
	// list was configured and empty when a configured list was malformed.
	Candidates []string

	// Keys replaces the keys bound to an action, by action name. An empty
	// list unbinds the action.
	Keys map[string][]string

	// ExtraKeys adds keys to an action alongside its defaults.
	ExtraKeys map[string][]string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		Placeholder: "Country",
		Label:       "Country",
		LogLevel:    "info",
	}
}

// ZapLevel returns LogLevel as a zap level, defaulting to info.
func (c *Config) ZapLevel() zap.AtomicLevel {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zap.NewAtomicLevelAt(level)
}
