// Package main implements the entry point for the items API server, which
// serves CRUD over items and the concurrent process-all endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/items-api/internal/config"
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/platform/postgres"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version, redo, reset) and exit")
	flag.Parse()

	if err := run(*configPath, *migrateCmd); err != nil {
		log.Fatalf("items-api: %v", err)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until a shutdown signal arrives.
func run(configPath, migrateCmd string) error {
	cfg, logger, err := initializeApp(configPath)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		logger.Info("Executing migration command", "command", migrateCmd)
		return postgres.RunMigrationCommand(ctx, db, migrateCmd, logger)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	if err := postgres.Migrate(migrateCtx, db, logger); err != nil {
		_ = db.Close()
		return err
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up logging.
func initializeApp(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"worker_count", cfg.Task.WorkerCount,
		"pid", os.Getpid())

	return cfg, l, nil
}
