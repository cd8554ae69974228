package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
	"github.com/dmitrijs2005/jobtracker/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations may be
// written as "500ms" or as integer nanoseconds. Fields left out of the file
// keep their previous values.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	APILatency   *timex.Duration `json:"api_latency"`
	LogLevel     *string         `json:"log_level"`
	LogFormat    *string         `json:"log_format"`
}

// parseJson overlays cfg with the file given by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.APILatency != nil {
		cfg.APILatency = jc.APILatency.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	return nil
}
