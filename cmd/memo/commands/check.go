package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the compile check, reusing the cached result when inputs are unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), domain.OpCompile, checkOptions(cmd))
		},
	}
}

func (c *CLI) newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Run the style check, reusing the cached result when inputs are unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Check(cmd.Context(), domain.OpStyle, checkOptions(cmd))
		},
	}
}

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite, reusing the cached result when inputs are unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			return c.app.Test(cmd.Context(), filter, checkOptions(cmd))
		},
	}
	cmd.Flags().StringP("filter", "t", "", "Only run tests whose name matches the filter")
	return cmd
}
