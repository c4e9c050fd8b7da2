package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/log"
	"github.com/ember-lang/ember/pipeline"
	"github.com/ember-lang/ember/pool"
	"github.com/ember-lang/ember/render"
	"github.com/ember-lang/ember/session"
	"github.com/ember-lang/ember/types"
)

// RunCommand returns the run command: evaluate a source file and print the
// final value. Exit code 1 when the file has errors.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Evaluate a source file",
		ArgsUsage: "<file>",
		Flags:     SharedFlags(),
		Action: func(c *cli.Context) error {
			return fileAction(c, session.Settings{
				Stage:    types.StageAnalysis,
				Evaluate: true,
			}, true)
		},
	}
}

// CheckCommand returns the check command: parse and type-check a source
// file without evaluating it. Exit code 1 when the file has errors.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Type-check a source file without evaluating it",
		ArgsUsage: "<file>",
		Flags:     SharedFlags(),
		Action: func(c *cli.Context) error {
			return fileAction(c, session.Settings{
				Stage: types.StageAnalysis,
			}, false)
		},
	}
}

// fileAction drives the pipeline once over a whole file. The file is one
// block; its semicolon-separated fragments still parse concurrently.
func fileAction(c *cli.Context, settings session.Settings, printArtifact bool) error {
	if c.NArg() != 1 {
		return cli.Exit(fmt.Sprintf("%s takes exactly one file argument", c.Command.Name), 1)
	}
	path := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot read %s: %v", path, err), 1)
	}

	state := session.NewState()
	logger := log.NewLogger(state.ID(), log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	state.ApplySettings(settings)
	block := state.RegisterBlockAt(path, string(data))

	driver := pipeline.NewDriver(pool.New(cfg.Workers), logger, nil)
	result, err := driver.Run(c.Context, block.ID, state)
	if err != nil {
		return cli.Exit(fmt.Sprintf("pipeline run failed: %v", err), 1)
	}

	renderer := render.New(os.Stderr, cfg.NoColor)
	diags := state.Diagnostics()
	renderer.Diagnostics(diags, state.Sources())
	if types.HasFatal(diags) {
		return cli.Exit("", 1)
	}

	if printArtifact && result.Artifact != "" {
		fmt.Fprintln(os.Stdout, result.Artifact)
	}
	return nil
}
