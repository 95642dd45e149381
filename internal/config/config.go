// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (profiles + usage stats)
	CacheSize   int    `json:"cache_size,omitempty"`   // Result cache capacity (default 100)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed analysis output
	JSONLog     bool   `json:"json_log,omitempty"`     // Emit logs as JSON instead of console format
	Debug       bool   `json:"debug,omitempty"`        // Enable debug-level logging
}

// defaultPort is used when no port is configured.
const defaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{Port: defaultPort}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	return nil
}

// ApplyEnv overlays environment variables onto the configuration.
// DATABASE_URL is the only value commonly injected via the environment.
func (c *Config) ApplyEnv() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.DatabaseURL = url
	}
}
