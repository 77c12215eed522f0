package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <depfile>...",
		Short: "Rewrite many dependency listings in one run",
		Long: "batch derives each target from the listing's own rule head and writes\n" +
			"the fragment next to the listing as <name>.cmd instead of stdout.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.configureApp(cmd)
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			return c.batch.Run(cmd.Context(), args, jobs)
		},
	}

	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "Maximum number of listings rewritten in parallel")

	return cmd
}
