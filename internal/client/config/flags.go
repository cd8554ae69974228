package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-d string          path to the local session database
//	-l int             simulated auth API latency (milliseconds)
//	-log-level string  debug, info, warn or error
//
// Only these flags are read from args; the rest are left to other stages.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-log-level"})

	fs := flag.NewFlagSet("jobtracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	latency := fs.Int("l", int(cfg.APILatency.Milliseconds()), "simulated auth API latency (ms)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *latency < 0 {
		return fmt.Errorf("parse flags: negative latency %d", *latency)
	}

	cfg.APILatency = time.Duration(*latency) * time.Millisecond
	return nil
}
