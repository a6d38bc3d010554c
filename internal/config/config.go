package config

import (
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/sirupsen/logrus"
)

const defaultMaxFileSize = 50 * datasize.MB

// Config holds the application configuration
type Config struct {
	Port        string
	Environment string
	MaxFileSize int64 // in bytes
	LogLevel    logrus.Level
}

// Load loads configuration from environment variables with defaults.
// Unparseable values fall back to the default rather than failing startup.
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("GO_ENV", "development"),
		MaxFileSize: int64(parseSize(getEnv("MAX_FILE_SIZE", ""), defaultMaxFileSize)),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", ""), logrus.InfoLevel),
	}

	return cfg
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseSize understands human-readable sizes such as "50MB" or "1.5GB".
func parseSize(value string, defaultValue datasize.ByteSize) datasize.ByteSize {
	if value == "" {
		return defaultValue
	}
	size, err := datasize.ParseString(value)
	if err != nil {
		return defaultValue
	}
	return size
}

func parseLogLevel(value string, defaultValue logrus.Level) logrus.Level {
	if value == "" {
		return defaultValue
	}
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return defaultValue
	}
	return level
}
