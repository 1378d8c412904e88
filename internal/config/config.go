package config

import (
	"strings"

	"github.com/spf13/viper"
	"gorm.io/gorm/logger"
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port     int32
		Host     string
		ReadOnly bool // reject every write request
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path     string
		Variant  string // "catalog" or "inventory"
		LogLevel string // silent, error, warn or info
	}
)

// GormLogLevel maps the configured level name onto gorm's logger levels.
// Unknown names fall back to warn.
func (d Database) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(d.LogLevel) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("read_only", false)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("catalog_variant", DefaultVariant)
	v.SetDefault("database_log_level", DefaultDatabaseLogLevel)

	return &Config{
		HTTP: HTTP{
			Port:     v.GetInt32("PORT"),
			Host:     v.GetString("HOST"),
			ReadOnly: v.GetBool("READ_ONLY"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			Variant:  v.GetString("CATALOG_VARIANT"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
	}
}
