package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ember-lang/ember/types"
)

// VersionCommand returns the version command. It never touches the
// pipeline or any session state.
func VersionCommand(commit string) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "Ember %s (commit: %s)\n", types.Version, commit)
			return nil
		},
	}
}
