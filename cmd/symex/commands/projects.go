package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects on the model server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			check, err := cmd.Flags().GetBool("check")
			if err != nil {
				return err
			}
			return c.app.ListProjects(cmd.Context(), cmd.OutOrStdout(), auth(cmd), check)
		},
	}
	cmd.Flags().Bool("check", false, "Probe each project and mark the ones that are not accessible")
	return cmd
}
