// Package common provides shared utilities for Vantage
package common

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dkellaway/vantage/internal/interfaces"
)

// Config holds all configuration for Vantage
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Storage     StorageConfig  `toml:"storage"`
	Clients     ClientsConfig  `toml:"clients"`
	Holdings    HoldingsConfig `toml:"holdings"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds SurrealDB connection configuration.
type StorageConfig struct {
	Address   string `toml:"address"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Finnhub FinnhubConfig `toml:"finnhub"`
	Gemini  GeminiConfig  `toml:"gemini"`
}

// FinnhubConfig holds Finnhub API configuration
type FinnhubConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *FinnhubConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// HoldingsConfig selects the origin holdings source used by sync.
// Origin is "demo" (built-in statement snapshot) or "statement" (PDF parse).
type HoldingsConfig struct {
	Origin        string `toml:"origin"`
	StatementPath string `toml:"statement_path"`
	QuoteCacheTTL string `toml:"quote_cache_ttl"`
}

// GetQuoteCacheTTL parses and returns the quote cache TTL.
func (c *HoldingsConfig) GetQuoteCacheTTL() time.Duration {
	d, err := time.ParseDuration(c.QuoteCacheTTL)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Address:   "ws://localhost:8000",
			Username:  "root",
			Password:  "root",
			Namespace: "vantage",
			Database:  "vantage",
		},
		Clients: ClientsConfig{
			Finnhub: FinnhubConfig{
				BaseURL:   "https://finnhub.io/api/v1",
				RateLimit: 10,
				Timeout:   "10s",
			},
			Gemini: GeminiConfig{
				Model: "gemini-2.0-flash",
			},
		},
		Holdings: HoldingsConfig{
			Origin:        "demo",
			QuoteCacheTTL: "60s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateHoldingsOrigin(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VANTAGE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VANTAGE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VANTAGE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VANTAGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("VANTAGE_STORAGE_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}

	if origin := os.Getenv("VANTAGE_HOLDINGS_ORIGIN"); origin != "" {
		config.Holdings.Origin = strings.ToLower(origin)
	}

	if path := os.Getenv("VANTAGE_STATEMENT_PATH"); path != "" {
		config.Holdings.StatementPath = path
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// ResolveAPIKey resolves an API key from environment, system KV store, or fallback
func ResolveAPIKey(ctx context.Context, store interfaces.SystemKVStore, name string, fallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		"finnhub_api_key": {"FINNHUB_API_KEY", "VANTAGE_FINNHUB_API_KEY"},
		"gemini_api_key":  {"GEMINI_API_KEY", "VANTAGE_GEMINI_API_KEY", "GOOGLE_API_KEY"},
	}

	// Environment variables win
	if envVarNames, ok := keyToEnvMapping[name]; ok {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	// Then the system KV store
	if store != nil {
		apiKey, err := store.GetSystemKV(ctx, name)
		if err == nil && apiKey != "" {
			return apiKey, nil
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment or store", name)
}

// validateHoldingsOrigin ensures the origin is a known source, defaulting to "demo".
func validateHoldingsOrigin(config *Config) {
	origin := strings.ToLower(strings.TrimSpace(config.Holdings.Origin))
	if origin != "demo" && origin != "statement" {
		origin = "demo"
	}
	config.Holdings.Origin = origin
}
