package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose uses to track applied migrations.
const MigrationTableName = "schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsFS exposes the embedded SQL migrations, rooted at "migrations".
func MigrationsFS() embed.FS {
	return migrationsFS
}

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// configureGoose points goose at the embedded migrations.
func configureGoose(logger *slog.Logger) error {
	goose.SetLogger(&slogGooseLogger{logger: logger.With(slog.String("component", "migrations"))})
	goose.SetTableName(MigrationTableName)
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate applies every pending migration to db.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := configureGoose(logger); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("database schema is up to date", slog.Int64("version", version))
	return nil
}

// RunMigrationCommand runs a goose command ("up", "down", "status",
// "version", "redo", "reset") against the embedded migrations.
func RunMigrationCommand(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := configureGoose(logger); err != nil {
		return err
	}

	switch command {
	case "up", "down", "status", "version", "redo", "reset":
	default:
		return fmt.Errorf("unsupported migration command %q", command)
	}

	if err := goose.RunContext(ctx, command, db, "migrations"); err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}
	return nil
}
