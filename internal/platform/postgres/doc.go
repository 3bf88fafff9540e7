// Package postgres provides the PostgreSQL implementation of store.ItemStore,
// the mapping of PostgreSQL errors onto store errors, and the embedded goose
// migrations that create the schema.
package postgres
