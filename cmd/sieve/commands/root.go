// Package commands implements the CLI commands for sieve.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/sieve/internal/app"
	"go.trai.ch/sieve/internal/build"
	"go.trai.ch/sieve/internal/core/ports"
)

// configurableLogger is implemented by the slog adapter.
type configurableLogger interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// progressRenderer is implemented by telemetry backends that can render progress.
type progressRenderer interface {
	SetOutput(w io.Writer)
}

// CLI represents the command line interface for sieve.
type CLI struct {
	app       *app.App
	logger    ports.Logger
	telemetry ports.Telemetry
	rootCmd   *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger, telemetry ports.Telemetry) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sieve",
		Short:         "Resolve analysis targets into per-language file lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().Bool("progress", false, "Render resolution progress to stderr")

	c := &CLI{
		app:       a,
		logger:    logger,
		telemetry: telemetry,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newLanguagesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return err
	}

	if l, ok := c.logger.(configurableLogger); ok {
		l.SetVerbose(verbose)
		l.SetJSON(logJSON)
	}

	progress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	if r, ok := c.telemetry.(progressRenderer); ok && progress {
		r.SetOutput(cmd.ErrOrStderr())
	}
	return nil
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
