// Package config loads the toolkit's connection settings from the
// environment and optional .env files.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the backend selection and connection strings.
type Config struct {
	// Provider names the backend: postgres, sqlite or mysql.
	Provider string
	// DatabaseURL is the server connection string for postgres/mysql.
	DatabaseURL string
	// SQLitePath is the database file for the embedded backend.
	SQLitePath string
}

// Load reads configuration from DBKIT_-prefixed environment variables,
// after loading .env and .env.local (the latter taking precedence) when
// present. Missing files are not an error.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := os.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	v := viper.New()
	v.SetEnvPrefix("DBKIT")
	v.AutomaticEnv()

	v.SetDefault("provider", "sqlite")
	v.SetDefault("sqlite_path", "dbkit.db")

	return &Config{
		Provider:    v.GetString("provider"),
		DatabaseURL: v.GetString("database_url"),
		SQLitePath:  v.GetString("sqlite_path"),
	}, nil
}

// DSN returns the connection string for the configured provider.
func (c *Config) DSN() string {
	switch c.Provider {
	case "sqlite", "sqlite3":
		return c.SQLitePath
	default:
		return c.DatabaseURL
	}
}
