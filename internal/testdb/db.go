//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/items-api/internal/platform/logger"
	"github.com/phrazzld/items-api/internal/platform/postgres"
	"github.com/phrazzld/items-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDB opens and pings the test database without a *testing.T,
// for use from TestMain.
func GetTestDB() (*sql.DB, error) {
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		return nil, fmt.Errorf("no test database configured: set one of %v", databaseURLEnvVars)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed for %s: %s", redact.String(dbURL), redact.Error(err))
	}

	return db, nil
}

// GetTestDBWithT returns a database connection for testing, skipping the test
// when no database is configured. The connection is closed on cleanup.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("no test database URL set - skipping integration test")
	}

	db, err := GetTestDB()
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	return db
}

// SetupTestDatabaseSchema applies the embedded migrations to db.
func SetupTestDatabaseSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return postgres.Migrate(ctx, db, logger.New(io.Discard, "error"))
}
