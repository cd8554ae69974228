package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the jobtracker CLI.
//
// Fields:
//   - DatabasePath: SQLite file that keeps the session between runs.
//   - APILatency: simulated round-trip time of the mock auth API.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
type Config struct {
	DatabasePath string
	APILatency   time.Duration
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "jobtracker.db"
	c.APILatency = 500 * time.Millisecond
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config, then the environment (and ./.env), then flags. Later sources
// take precedence. args are the command-line arguments without the program
// name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, ".env", os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
