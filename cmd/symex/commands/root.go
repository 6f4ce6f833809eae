// Package commands implements the CLI commands for the symex explorer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/symex/internal/app"
	"go.trai.ch/symex/internal/build"
)

// CLI represents the command line interface for symex.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ListProjects(ctx context.Context, out io.Writer, auth app.Auth, check bool) error
	ListCommits(ctx context.Context, out io.Writer, auth app.Auth, project string) error
	Tree(ctx context.Context, out io.Writer, auth app.Auth, project, commit, element string) error
	Export(ctx context.Context, auth app.Auth, project, commit string) error
	Report(ctx context.Context, auth app.Auth, project, commit string) error
	Diff(ctx context.Context, out io.Writer, auth app.Auth, project, before, after string, unified bool) error
	Explore(ctx context.Context, auth app.Auth, project, commit string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "symex",
		Short:         "Explore SysML v2 models on a remote model server",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("username", "u", "", "Server username, overrides the credential chain")
	rootCmd.PersistentFlags().StringP("password", "p", "", "Server password, overrides the credential chain")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newProjectsCmd())
	rootCmd.AddCommand(c.newCommitsCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newExploreCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// auth collects the credential override flags of a command.
func auth(cmd *cobra.Command) app.Auth {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	return app.Auth{Username: username, Password: password}
}

// optionalCommit returns the second positional argument, if present.
func optionalCommit(args []string) string {
	if len(args) > 1 {
		return args[1]
	}
	return ""
}
