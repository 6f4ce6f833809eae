package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <project> [commit] [element]",
		Short: "Print the element tree of a commit in textual notation",
		Long: "Print the element tree of a commit in textual notation. Without a commit the " +
			"newest one is used; an element id narrows the output to that subtree.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			element := ""
			if len(args) > 2 {
				element = args[2]
			}
			return c.app.Tree(cmd.Context(), cmd.OutOrStdout(), auth(cmd), args[0], optionalCommit(args), element)
		},
	}
}
