//go:build integration

package testdb

import "os"

// Environment variables consulted for the test database URL, in order.
var databaseURLEnvVars = []string{"DATABASE_URL", "ITEMS_TEST_DB_URL", "ITEMS_DATABASE_URL"}

// GetTestDatabaseURL returns the first non-empty database URL from the environment.
func GetTestDatabaseURL() string {
	for _, envVar := range databaseURLEnvVars {
		if v := os.Getenv(envVar); v != "" {
			return v
		}
	}
	return ""
}

// IsIntegrationTestEnvironment returns true if a test database URL is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// ShouldSkipDatabaseTest returns true if no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return !IsIntegrationTestEnvironment()
}
