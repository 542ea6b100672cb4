package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/tick/internal/database"
	taskservice "github.com/thenoetrevino/tick/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore
	db   *sql.DB

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		repo: repo,
		db:   db,
		TaskService: taskservice.NewService(repo,
			taskservice.WithLogger(cfg.logger),
			taskservice.WithClock(cfg.clock),
		),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database handle. The App must not be used afterwards.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
