package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090/api/", "-t", "10", "-s", "redis", "-f", "x.db", "-r", "cache:6379", "-l", "debug", "-b", "logrus"},
			expected: &Config{
				ServerBaseURL:  "http://127.0.0.1:9090/api/",
				RequestTimeout: 10 * time.Second,
				StoreDriver:    "redis",
				StorePath:      "x.db",
				RedisAddr:      "cache:6379",
				LogLevel:       "debug",
				LogBackend:     "logrus",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "conf.json", "-e", "dev.env", "-a", "http://h/"},
			expected: &Config{ServerBaseURL: "http://h/"},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
