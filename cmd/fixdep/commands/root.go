// Package commands implements the CLI commands for the fixdep tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/fixdep/internal/app"
	"go.trai.ch/fixdep/internal/engine/batch"
)

// CLI represents the command line interface for fixdep.
type CLI struct {
	app     *app.App
	batch   *batch.Runner
	out     io.Writer
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and batch runner.
func New(a *app.App, b *batch.Runner) *CLI {
	c := &CLI{
		app:   a,
		batch: b,
		out:   os.Stdout,
	}

	rootCmd := &cobra.Command{
		Use:   "fixdep <depfile> <target> <cmdline>",
		Short: "Rewrite a compiler dependency listing into a make fragment",
		Long: "fixdep reads the dependency listing the compiler emitted for one target\n" +
			"and writes a make-includable fragment to stdout: a saved-command binding,\n" +
			"a deduplicated prerequisite variable with the configuration header and\n" +
			"generated artifacts filtered out, and empty-recipe rules so deleted\n" +
			"prerequisites do not break the build.",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.configureApp(cmd)
			return c.app.Fix(cmd.Context(), args[0], args[1], args[2], c.out)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to an optional exclusion-rules file")
	rootCmd.PersistentFlags().Bool("expand-configs", false,
		"Scan kept prerequisites for configuration symbols and add marker-file dependencies")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configureApp pushes the persistent flag values into the application.
func (c *CLI) configureApp(cmd *cobra.Command) {
	if path, err := cmd.Flags().GetString("config"); err == nil {
		c.app.SetRulesPath(path)
	}
	if expand, err := cmd.Flags().GetBool("expand-configs"); err == nil {
		c.app.SetExpandConfigs(expand)
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects the fragment output stream. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.out = w
}
