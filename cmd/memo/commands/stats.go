package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache health, or a projected view of cached state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, _ := cmd.Flags().GetString("view")
			return c.app.Stats(view, checkOptions(cmd))
		},
	}
	cmd.Flags().String("view", "", "Project a view instead: fingerprints, structure, compile, style or test")
	return cmd
}
