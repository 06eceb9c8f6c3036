package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported store drivers
const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

// Config holds all configuration for the service
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
}

// StoreConfig holds durable-store configuration
type StoreConfig struct {
	Driver     string
	TableName  string
	Region     string
	SQLitePath string
}

// Load loads configuration from environment variables with defaults suited
// to local development (SQLite store, port 8081).
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORE_DRIVER", StoreDriverSQLite)
	viper.SetDefault("QUERIES_TABLE_NAME", "queries")
	viper.SetDefault("SQLITE_PATH", "./data/queries.db")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Store: StoreConfig{
			Driver:     viper.GetString("STORE_DRIVER"),
			TableName:  viper.GetString("QUERIES_TABLE_NAME"),
			Region:     viper.GetString("AWS_REGION"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
	}

	return config, nil
}

// IsDevelopment reports whether the service runs in the development
// environment. Anything else (production, staging) gets release behavior:
// release-mode gin and JSON logs.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
