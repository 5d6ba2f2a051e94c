package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/adapters/monitor"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cached entries using a cleanup strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strategy, _ := cmd.Flags().GetString("strategy")
			pattern, _ := cmd.Flags().GetString("pattern")
			return c.app.Clean(strategy, pattern)
		},
	}
	cmd.Flags().String("strategy", string(monitor.StrategyNamespaceSweep),
		"Cleanup strategy: namespace-sweep, size-target, age-sweep or pattern-match")
	cmd.Flags().String("pattern", "", "Key pattern for the pattern-match strategy")
	return cmd
}
