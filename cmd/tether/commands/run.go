package commands

import (
	"github.com/spf13/cobra"

	"go.trai.ch/tether/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a binding scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, _ := cmd.Flags().GetString("progress")
			dump, _ := cmd.Flags().GetBool("dump")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Run(cmd.Context(), args[0], app.RunOptions{
				Progress: progress,
				Dump:     dump,
				Verbose:  verbose,
			})
		},
	}
	cmd.Flags().StringP("progress", "p", "auto", "Progress view: auto, on, or off")
	cmd.Flags().Bool("dump", false, "Dump the final rig state after the run")
	cmd.Flags().BoolP("verbose", "v", false, "Show debug-level bind transitions")
	return cmd
}
