package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <project> [commit]",
		Short: "Open the interactive element tree explorer",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Explore(cmd.Context(), auth(cmd), args[0], optionalCommit(args))
		},
	}
}
