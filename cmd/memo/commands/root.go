// Package commands implements the CLI commands for the memo check cache.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
	"go.trai.ch/memo/internal/build"
	"go.trai.ch/memo/internal/core/domain"
)

// App is the application surface the CLI drives.
type App interface {
	Check(ctx context.Context, op domain.OperationType, opts app.CheckOptions) error
	Test(ctx context.Context, filter string, opts app.CheckOptions) error
	Watch(ctx context.Context) error
	Stats(view string, opts app.CheckOptions) error
	Clean(strategy, pattern string) error
}

// CLI represents the command line interface for memo.
type CLI struct {
	app     App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "memo",
		Short:         "A result cache for compile, style and test checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newStyleCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// SetOutput redirects the command's stdout and stderr. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func checkOptions(cmd *cobra.Command) app.CheckOptions {
	jsonOut, _ := cmd.Flags().GetBool("json")
	return app.CheckOptions{JSON: jsonOut}
}
