// Package config loads runtime settings for the personas CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the personas API (default http://localhost:3000/api)
//	-t int      request timeout in seconds
//	-i int      health check interval in seconds
//	-d string   path to the local session database
package config

import "time"

// Config holds runtime settings for the personas CLI.
type Config struct {
	// BaseURL is the API root, including the /api base path.
	BaseURL string

	// RequestTimeout bounds every remote call.
	RequestTimeout time.Duration

	// HealthCheckInterval is how often the client probes GET /health to
	// keep the connectivity indicator fresh.
	HealthCheckInterval time.Duration

	// DatabasePath locates the local session database.
	DatabasePath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.HealthCheckInterval = 30 * time.Second
	c.DatabasePath = "personas.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a file was given) and command-line flags. Later sources
// take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
