// Package cmd provides CLI commands for the ember binary.
package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/cli/config"
)

// Shared flags across ember commands. Flags always override config values.
var (
	// ConfigFlag points at an explicit config file.
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"C"},
		Usage:   "Path to an ember.yaml config file",
	}

	// WorkersFlag sets the pipeline worker count.
	WorkersFlag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "Pipeline worker count (0 = one per CPU)",
	}

	// LogLevelFlag sets the minimum log level.
	LogLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum log level: debug, info, warn, error",
	}

	// NoColorFlag disables colored output.
	NoColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}

	// HistoryFlag sets the interactive history file.
	HistoryFlag = &cli.StringFlag{
		Name:  "history",
		Usage: "Line history file (empty disables history)",
	}

	// TranscriptFlag sets the session transcript file.
	TranscriptFlag = &cli.StringFlag{
		Name:  "transcript",
		Usage: "Session transcript file (empty disables recording)",
	}

	// PromptFlag sets the interactive prompt.
	PromptFlag = &cli.StringFlag{
		Name:  "prompt",
		Usage: "Interactive prompt string",
	}
)

// SharedFlags returns the flags common to every pipeline-running command.
func SharedFlags() []cli.Flag {
	return []cli.Flag{
		ConfigFlag,
		WorkersFlag,
		LogLevelFlag,
		NoColorFlag,
	}
}

// ReplFlags returns the flags for the interactive session.
func ReplFlags() []cli.Flag {
	return append(SharedFlags(),
		HistoryFlag,
		TranscriptFlag,
		PromptFlag,
	)
}

// loadConfig resolves the effective configuration: the explicit --config
// file when given, else the conventional location (missing is fine), with
// set flags layered on top.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.IsSet("config") {
		cfg, err = config.Load(c.String("config"))
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath())
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
	}
	if c.IsSet("history") {
		cfg.History = c.String("history")
	}
	if c.IsSet("transcript") {
		cfg.Transcript = c.String("transcript")
	}
	if c.IsSet("prompt") {
		cfg.Prompt = c.String("prompt")
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
