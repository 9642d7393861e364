// Package config resolves settings from the environment, with .env support.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the trading bot
type Config struct {
	// Testnet API credentials; flags may override these
	APIKey    string
	APISecret string

	BaseURL    string
	RecvWindow int64
	Timeout    time.Duration

	LogLevel string
	LogDir   string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIKey:     getEnv("BINANCE_TESTNET_API_KEY", ""),
		APISecret:  getEnv("BINANCE_TESTNET_API_SECRET", ""),
		BaseURL:    getEnv("BINANCE_TESTNET_BASE_URL", "https://testnet.binancefuture.com"),
		RecvWindow: getEnvAsInt64("BINANCE_RECV_WINDOW", 5000),
		Timeout:    getEnvAsDuration("BINANCE_TIMEOUT", "10s"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogDir:     getEnv("LOG_DIR", "logs"),
	}
}

// HasCredentials reports whether both credential strings are set.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if int64Value, err := strconv.ParseInt(value, 10, 64); err == nil {
			return int64Value
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
