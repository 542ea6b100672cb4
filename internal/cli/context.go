package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tick/internal/app"
	"github.com/thenoetrevino/tick/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an already built App. Commands run with
// such a context use it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for a running command. An App injected with
// WithApp is reused; otherwise config is loaded and the database opened, with
// the --db flag taking precedence over TICK_DB and the config file.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var dbFlag string
	if f := cmd.Flags().Lookup("db"); f != nil {
		dbFlag = f.Value.String()
	}

	return NewCLI(ctx, cfg, cfg.ResolveDatabasePath(dbFlag))
}
