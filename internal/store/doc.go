// Package store defines the persistence contract for items. The interfaces
// here keep the service and batch layers independent of the database
// technology; internal/platform/postgres provides the implementation.
package store
