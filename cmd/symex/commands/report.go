package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <project> [commit]",
		Short: "Render an HTML report of a commit into the output directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Report(cmd.Context(), auth(cmd), args[0], optionalCommit(args))
		},
	}
}
