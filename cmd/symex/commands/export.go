package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <project> [commit]",
		Short: "Write the textual notation and a JSON dump to the output directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Export(cmd.Context(), auth(cmd), args[0], optionalCommit(args))
		},
	}
}
