package config

import (
	"os"
	"strconv"

	"scistat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Analysis AnalysisConfig
	Data     DataConfig
}

// DatabaseConfig holds database connection settings. An empty URL keeps
// the in-memory report store.
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AnalysisConfig holds statistical defaults
type AnalysisConfig struct {
	Alpha float64
}

// DataConfig holds data ingestion settings
type DataConfig struct {
	File string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnv("SCISTAT_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Analysis: AnalysisConfig{
			Alpha: 0.05,
		},
		Data: DataConfig{
			File: os.Getenv("SCISTAT_DATA_FILE"),
		},
	}

	if raw := os.Getenv("SCISTAT_ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid SCISTAT_ALPHA %q", raw)
		}
		if alpha <= 0 || alpha >= 1 {
			return nil, errors.ConfigInvalid("SCISTAT_ALPHA must be between 0 and 1")
		}
		config.Analysis.Alpha = alpha
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
