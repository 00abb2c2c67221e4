package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the emergency15 client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API; endpoint names are appended.
//   - RequestTimeout / UploadTimeout: per-request limits for JSON calls and evidence uploads.
//   - StoreDriver: persistent store backend, one of "sqlite", "redis", "memory".
//   - StorePath: SQLite database file used by the "sqlite" driver.
//   - RedisAddr / RedisPassword / RedisDB / RedisPrefix: settings of the "redis" driver.
//   - LogLevel / LogBackend: logging verbosity and implementation ("slog" or "logrus").
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	UploadTimeout  time.Duration
	StoreDriver    string
	StorePath      string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	LogLevel       string
	LogBackend     string
}

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverRedis  = "redis"
	StoreDriverMemory = "memory"
)

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://api.ict15.gov.pk/api/"
	c.RequestTimeout = 30 * time.Second
	c.UploadTimeout = 200 * time.Second
	c.StoreDriver = StoreDriverSQLite
	c.StorePath = "emergency15.db"
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "emergency15:"
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a dotenv file), JSON (if present)
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
