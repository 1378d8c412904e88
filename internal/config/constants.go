package config

// Defaults shared by the server and the CLI commands.
const (
	// DefaultDatabasePath is the default path for the store file
	DefaultDatabasePath = "./movies.db"

	// DefaultVariant is the schema variant opened when none is configured
	DefaultVariant = "catalog"

	// DefaultDatabaseLogLevel controls gorm's SQL logger
	DefaultDatabaseLogLevel = "warn"
)
