package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Task     TaskConfig     `mapstructure:"task"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// WriteTimeout must cover a full batch run since /api/items/process
	// answers only after every item settled.
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gte=0"`
}

// TaskConfig controls the batch processor.
type TaskConfig struct {
	// WorkerCount bounds how many items are processed concurrently.
	WorkerCount int `mapstructure:"worker_count" validate:"gt=0,lte=1000"`

	// UnitTimeout bounds the store calls of a single item. Zero disables it.
	UnitTimeout time.Duration `mapstructure:"unit_timeout" validate:"gte=0"`
}
