package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/cli/config"
	"github.com/ember-lang/ember/log"
	"github.com/ember-lang/ember/metrics"
	"github.com/ember-lang/ember/pipeline"
	"github.com/ember-lang/ember/pool"
	"github.com/ember-lang/ember/reader"
	"github.com/ember-lang/ember/render"
	"github.com/ember-lang/ember/repl"
	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/transcript"
)

// ReplCommand returns the interactive session command. It is also the
// app's default action when ember runs with no arguments.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:   "repl",
		Usage:  "Start an interactive session",
		Flags:  ReplFlags(),
		Action: ReplAction,
	}
}

// ReplAction wires the session and runs the loop until quit.
func ReplAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	state := session.NewState()
	logger := log.NewLogger(state.ID(), log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	collector := metrics.New()
	driver := pipeline.NewDriver(pool.New(cfg.Workers), logger, collector)

	source := reader.NewTerminal(os.Stdin, os.Stdout, cfg.Prompt, cfg.History, logger)
	defer source.Close()

	recorder, err := openRecorder(cfg, logger)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer recorder.Close()

	renderer := render.New(os.Stdout, cfg.NoColor)
	loop := repl.NewLoop(state, driver, source, renderer, os.Stdout, logger, collector, recorder)
	return loop.Run(c.Context)
}

// openRecorder opens the transcript when configured. A nil recorder drops
// every append.
func openRecorder(cfg *config.Config, logger *log.Logger) (*transcript.Recorder, error) {
	if cfg.Transcript == "" {
		return nil, nil
	}
	recorder, err := transcript.Open(cfg.Transcript)
	if err != nil {
		return nil, err
	}
	logger.Debug("transcript open", map[string]any{"path": cfg.Transcript})
	return recorder, nil
}
