package config

// DefaultDSN is the database file used when no DSN is configured.
// It matches the store file the application has always created next to
// its working directory.
const DefaultDSN = "savings_tracker.db"

// StructuredConfig is the top-level configuration container for the
// savings tracker. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the textual zerolog level applied at startup
	// (e.g. "debug", "info", "warn").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the backend. A plain file path opens a
	// local SQLite database; a "postgres://" (or "postgresql://") URI opens
	// a PostgreSQL connection.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
