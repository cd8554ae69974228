// Package config loads runtime configuration for the jobtracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: JOBTRACKER_DB, JOBTRACKER_API_LATENCY ("500ms"),
//     JOBTRACKER_LOG_LEVEL, JOBTRACKER_LOG_FORMAT. A .env file in the working
//     directory is loaded first with godotenv; real environment variables
//     take precedence over it.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string          path to the local session database
//	-l int             simulated auth API latency (milliseconds)
//	-log-level string  log level
//
// # JSON schema
//
//	{
//	  "database_path": "jobtracker.db",
//	  "api_latency": "500ms",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
