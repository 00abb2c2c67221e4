package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/emergency15/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "EMERGENCY15_"

// parseEnv overlays Config with EMERGENCY15_* environment variables.
//
// When -e/-env names a dotenv file it is loaded first; variables that are
// already set in the process environment are not overridden by the file.
// A missing or unreadable dotenv file panics, like a broken JSON config.
//
// Recognised variables:
//
//	EMERGENCY15_SERVER_BASE_URL   EMERGENCY15_REQUEST_TIMEOUT (duration)
//	EMERGENCY15_UPLOAD_TIMEOUT    EMERGENCY15_STORE_DRIVER
//	EMERGENCY15_STORE_PATH        EMERGENCY15_REDIS_ADDR
//	EMERGENCY15_REDIS_PASSWORD    EMERGENCY15_REDIS_DB (int)
//	EMERGENCY15_REDIS_PREFIX      EMERGENCY15_LOG_LEVEL
//	EMERGENCY15_LOG_BACKEND
func parseEnv(cfg *Config, args []string) {
	if path := flagx.EnvFilePath(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	}

	envString(&cfg.ServerBaseURL, "SERVER_BASE_URL")
	envDuration(&cfg.RequestTimeout, "REQUEST_TIMEOUT")
	envDuration(&cfg.UploadTimeout, "UPLOAD_TIMEOUT")
	envString(&cfg.StoreDriver, "STORE_DRIVER")
	envString(&cfg.StorePath, "STORE_PATH")
	envString(&cfg.RedisAddr, "REDIS_ADDR")
	envString(&cfg.RedisPassword, "REDIS_PASSWORD")
	envInt(&cfg.RedisDB, "REDIS_DB")
	envString(&cfg.RedisPrefix, "REDIS_PREFIX")
	envString(&cfg.LogLevel, "LOG_LEVEL")
	envString(&cfg.LogBackend, "LOG_BACKEND")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}

func envInt(dst *int, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = i
}

func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
