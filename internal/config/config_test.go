package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dispatch/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_empty_path_returns_defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body    string
		check   func(t *testing.T, cfg config.Config)
		wantErr string
	}{
		"overrides defaults": {
			body: `
addr = ":9090"
log_level = "debug"
strict_extraction = true

[rate_limit]
rate = 5.0
burst = 2
`,
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, ":9090", cfg.Addr)
				assert.True(t, cfg.StrictExtraction)
				assert.False(t, cfg.ExactPayload)
				assert.Equal(t, 1<<20, cfg.BodyLimit)
				assert.InDelta(t, 5.0, cfg.RateLimit.Rate, 0)
				assert.Equal(t, 2, cfg.RateLimit.Burst)

				lvl, err := cfg.Level()
				require.NoError(t, err)
				assert.Equal(t, slog.LevelDebug, lvl)
			},
		},
		"timeout and profiler": {
			body: `
timeout = "250ms"
profiler = true
`,
			check: func(t *testing.T, cfg config.Config) {
				t.Helper()
				assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Timeout))
				assert.True(t, cfg.Profiler)
			},
		},
		"bad timeout": {
			body:    `timeout = "soon"`,
			wantErr: "parse config",
		},
		"malformed toml": {
			body:    `addr = `,
			wantErr: "parse config",
		},
		"rate without burst": {
			body:    "[rate_limit]\nrate = 1.0\n",
			wantErr: "burst must be positive",
		},
		"bad log level": {
			body:    `log_level = "loud"`,
			wantErr: "log_level",
		},
		"non-positive body limit": {
			body:    `body_limit = 0`,
			wantErr: "body_limit must be positive",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Load(writeFile(t, tc.body))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
