package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/cli"
	"github.com/thenoetrevino/tick/internal/cli/styles"
	"github.com/thenoetrevino/tick/internal/cli/task"
	"github.com/thenoetrevino/tick/internal/config"
	"github.com/thenoetrevino/tick/internal/logging"
)

// NewRootCmd builds the tick command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tick",
		Short: "Tick - a small task manager for the terminal",
		Long: `Tick keeps a list of tasks in a local SQLite database.

Tasks have a title, optional description, priority and due date. A pending
task whose due date has passed is reported as overdue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("db", "", fmt.Sprintf("Path to the task database (default %s, or $%s)", config.DefaultDatabasePath, config.EnvDatabasePath))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(task.Commands()...)

	return rootCmd
}

// Execute runs the root command. Logging and the color theme are set up
// before any command runs; neither failing stops the command.
func Execute(ctx context.Context, args []string) error {
	closer, err := logging.Init()
	if err != nil {
		slog.Debug("logging disabled", "error", err)
	}
	defer func() { _ = closer.Close() }()

	applyTheme()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	err = rootCmd.ExecuteContext(ctx)
	if err != nil {
		slog.Error("command failed", "args", args, "error", err)
	}
	return err
}

func applyTheme() {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config for theme", "error", err)
		return
	}
	styles.Init(cfg.ColorScheme)
}
