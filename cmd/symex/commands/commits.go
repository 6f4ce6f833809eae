package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCommitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commits <project>",
		Short: "List the commits of a project, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ListCommits(cmd.Context(), cmd.OutOrStdout(), auth(cmd), args[0])
		},
	}
}
