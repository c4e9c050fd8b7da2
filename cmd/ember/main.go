// Package main provides the ember CLI entrypoint.
//
// Running ember with no command starts an interactive session.
//
// Usage:
//
//	ember [options]            start the interactive session
//	ember run <file>           evaluate a source file
//	ember check <file>         type-check a source file
//	ember version              show version information
//
// run and check exit 1 when the file has errors.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/cli/cmd"
	"github.com/ember-lang/ember/types"
)

// Commit is set via ldflags at build time.
var commit = "unknown"

func main() {
	app := &cli.App{
		Name:           "ember",
		Usage:          "Ember language interactive session and file runner",
		Version:        fmt.Sprintf("%s (commit: %s)", types.Version, commit),
		Flags:          cmd.ReplFlags(),
		Action:         cmd.ReplAction,
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			cmd.ReplCommand(),
			cmd.RunCommand(),
			cmd.CheckCommand(),
			cmd.VersionCommand(commit),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder errors.
		// This branch handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler handles errors from the CLI, preserving exit codes from
// cli.Exit() so run and check failures propagate to the shell.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	// Check for ExitCoder (from cli.Exit), handles wrapped errors
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N"; skip those
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
