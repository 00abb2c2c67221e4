// Package config loads runtime configuration for the emergency15 client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed EMERGENCY15_, optionally seeded from a
//     dotenv file selected via -e or -env (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-s string   store driver (sqlite, redis, memory)
//	-f string   SQLite database file
//	-r string   Redis address
//	-l string   log level
//	-b string   log backend (slog, logrus)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.ict15.gov.pk/api/",
//	  "request_timeout": "30s",
//	  "store_driver": "sqlite",
//	  "store_path": "emergency15.db",
//	  "log_backend": "logrus"
//	}
package config
