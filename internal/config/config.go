// Package config loads the sample server's settings from an optional TOML
// file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the sample server configuration.
//
//	addr = ":8080"
//	log_level = "debug"
//	strict_extraction = true
//	exact_payload = false
//	body_limit = 4096
//	timeout = "5s"
//	profiler = true
//
//	[rate_limit]
//	rate = 50.0
//	burst = 10
type Config struct {
	Addr             string    `toml:"addr"`
	LogLevel         string    `toml:"log_level"`
	StrictExtraction bool      `toml:"strict_extraction"`
	ExactPayload     bool      `toml:"exact_payload"`
	BodyLimit        int       `toml:"body_limit"`
	Timeout          Duration  `toml:"timeout"`
	Profiler         bool      `toml:"profiler"`
	RateLimit        RateLimit `toml:"rate_limit"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// RateLimit configures per-route rate limiting. A zero Rate disables it.
type RateLimit struct {
	Rate  float64 `toml:"rate"`
	Burst int     `toml:"burst"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:      ":8080",
		LogLevel:  "info",
		BodyLimit: 1 << 20,
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	//nolint:gosec // operator-supplied config path
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.BodyLimit <= 0 {
		errs = append(errs, fmt.Errorf("body_limit must be positive, got %d", c.BodyLimit))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %v", time.Duration(c.Timeout)))
	}
	if c.RateLimit.Rate < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.rate must not be negative, got %v", c.RateLimit.Rate))
	}
	if c.RateLimit.Rate > 0 && c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("rate_limit.burst must be positive when rate is set"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
