package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/items-api/internal/config"
	"github.com/phrazzld/items-api/internal/platform/postgres"
	"github.com/phrazzld/items-api/internal/service"
	"github.com/phrazzld/items-api/internal/store"
	"github.com/phrazzld/items-api/internal/task"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	itemStore     store.ItemStore
	itemService   service.ItemService
	itemProcessor *task.ItemProcessor
}

// newApplication wires the store, service and processor on top of an
// established database connection. db may be nil when itemStore is supplied
// through newApplicationWithStore.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	return newApplicationWithStore(cfg, logger, db, postgres.NewPostgresItemStore(db, logger))
}

func newApplicationWithStore(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	itemStore store.ItemStore,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		itemStore: itemStore,
	}

	var err error
	app.itemService, err = service.NewItemService(itemStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item service: %w", err)
	}

	app.itemProcessor, err = task.NewItemProcessor(itemStore, task.ProcessorConfig{
		WorkerCount: cfg.Task.WorkerCount,
		UnitTimeout: cfg.Task.UnitTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create item processor: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until it has shut down.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
