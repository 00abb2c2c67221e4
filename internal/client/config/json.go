package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/emergency15/internal/flagx"
	"github.com/dmitrijs2005/emergency15/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify timeouts either as
// strings like "30s" or as integer nanoseconds. Pointer fields tell an
// absent key apart from an explicit zero value.
type JsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	UploadTimeout  *timex.Duration `json:"upload_timeout"`
	StoreDriver    *string         `json:"store_driver"`
	StorePath      *string         `json:"store_path"`
	RedisAddr      *string         `json:"redis_addr"`
	RedisPassword  *string         `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	RedisPrefix    *string         `json:"redis_prefix"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag nothing happens. Keys missing from the
// file leave the current value untouched.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.ServerBaseURL, jc.ServerBaseURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.UploadTimeout != nil {
		cfg.UploadTimeout = jc.UploadTimeout.Duration
	}
	setIf(&cfg.StoreDriver, jc.StoreDriver)
	setIf(&cfg.StorePath, jc.StorePath)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisPrefix, jc.RedisPrefix)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogBackend, jc.LogBackend)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
