//go:build integration

// Package testdb provides helpers for database integration tests.
//
// Tests open one connection per package, apply the embedded migrations once,
// and run each test body inside a transaction that is always rolled back:
//
//	func TestMyFeature(t *testing.T) {
//		db := testdb.GetTestDBWithT(t)
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			itemStore := postgres.NewPostgresItemStore(tx, nil)
//			// ...
//		})
//	}
package testdb
