package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents an ember.yaml configuration file.
// All values are optional and act as defaults for ember flags.
// CLI flags always override config values.
type Config struct {
	// Workers is the pipeline worker count. Zero means one per CPU.
	Workers int `yaml:"workers"`
	// History is the path of the line history file. Empty disables history.
	History string `yaml:"history"`
	// Transcript is the path of the session transcript file. Empty
	// disables transcript recording.
	Transcript string `yaml:"transcript"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// Prompt is the interactive prompt string.
	Prompt string `yaml:"prompt"`
	// NoColor disables styled output even on a TTY.
	NoColor bool `yaml:"no_color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:  runtime.NumCPU(),
		LogLevel: "warn",
		Prompt:   "ember> ",
	}
}

// Normalize fills zero values with defaults and validates the rest.
func (c *Config) Normalize() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Prompt == "" {
		c.Prompt = "ember> "
	}
	return nil
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/ember/ember.yaml, or "" when no home is known.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "ember", "ember.yaml")
}
