package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/personacli/internal/flagx"
	"github.com/dmitrijs2005/personacli/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling. Durations accept
// either strings like "10s" or integer nanoseconds via timex.Duration.
//
//	{
//	  "base_url": "http://localhost:3000/api",
//	  "request_timeout": "10s",
//	  "health_check_interval": "30s",
//	  "database_path": "personas.db"
//	}
type jsonConfig struct {
	BaseURL             string         `json:"base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	DatabasePath        string         `json:"database_path"`
}

// parseJSON overlays cfg with values from the JSON file named by -c or
// -config. Missing flag means no JSON is loaded. Only fields actually
// present in the file override defaults.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
