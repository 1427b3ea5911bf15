package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by Overlay.
const EnvPrefix = "DISPATCH_"

// ReadEnv returns the DISPATCH_* variables from the given dotenv files and
// the process environment. Process variables win over file values and
// missing files are skipped.
func ReadEnv(files ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range vals {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// Overlay applies env over c. Recognized keys are DISPATCH_ADDR,
// DISPATCH_LOG_LEVEL, DISPATCH_STRICT_EXTRACTION, DISPATCH_EXACT_PAYLOAD,
// DISPATCH_BODY_LIMIT and DISPATCH_PROFILER. The result is validated.
func (c *Config) Overlay(env map[string]string) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := env[EnvPrefix+key]; ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := env[EnvPrefix+key]; ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, key, err))
				return
			}
			*dst = b
		}
	}

	str("ADDR", &c.Addr)
	str("LOG_LEVEL", &c.LogLevel)
	boolean("STRICT_EXTRACTION", &c.StrictExtraction)
	boolean("EXACT_PAYLOAD", &c.ExactPayload)
	boolean("PROFILER", &c.Profiler)
	if v, ok := env[EnvPrefix+"BODY_LIMIT"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sBODY_LIMIT: %w", EnvPrefix, err))
		} else {
			c.BodyLimit = n
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	return c.Validate()
}
