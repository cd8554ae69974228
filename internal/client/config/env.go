package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/jobtracker/internal/common"
)

const (
	envDatabasePath = common.EnvPrefix + "DB"
	envAPILatency   = common.EnvPrefix + "API_LATENCY"
	envLogLevel     = common.EnvPrefix + "LOG_LEVEL"
	envLogFormat    = common.EnvPrefix + "LOG_FORMAT"
)

// parseEnv loads dotenvPath into the process environment when the file
// exists (variables already set win) and then overlays cfg with the
// JOBTRACKER_* variables visible through lookup.
func parseEnv(cfg *Config, dotenvPath string, lookup func(string) (string, bool)) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	if v, ok := lookup(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(envAPILatency); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envAPILatency, err)
		}
		cfg.APILatency = d
	}
	if v, ok := lookup(envLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(envLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	return nil
}
