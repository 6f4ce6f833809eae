package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <project> <before-commit> <after-commit>",
		Short: "Classify element changes between two commits",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			unified, _ := cmd.Flags().GetBool("unified")
			return c.app.Diff(cmd.Context(), cmd.OutOrStdout(), auth(cmd), args[0], args[1], args[2], unified)
		},
	}
	cmd.Flags().Bool("unified", false, "Print a unified JSON diff for every modified element")
	return cmd
}
