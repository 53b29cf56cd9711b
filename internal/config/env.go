package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/maps"
)

// EnvPrefix is the prefix of environment variables read as configuration.
// A double underscore separates nesting levels:
// SCRUBBER_SCRUB__SEEK_STEP=10 sets scrub.seek_step.
const EnvPrefix = "SCRUBBER_"

// Env is a koanf provider reading SCRUBBER_ variables from a dotenv file
// and from the process environment, the latter taking priority.
type Env struct {
	envFile string
	environ []string
}

// EnvProvider returns a provider over envFile (may be absent) and environ
// ("KEY=value" pairs, as from os.Environ).
func EnvProvider(envFile string, environ []string) *Env {
	return &Env{envFile: envFile, environ: environ}
}

// ReadBytes is not supported; Env yields a parsed map.
func (e *Env) ReadBytes() ([]byte, error) {
	return nil, errors.New("env provider does not support ReadBytes")
}

// Read returns the nested configuration map.
func (e *Env) Read() (map[string]any, error) {
	flat := make(map[string]any)

	if e.envFile != "" {
		// A missing or unreadable dotenv file is not an error
		if values, err := godotenv.Read(e.envFile); err == nil {
			for k, v := range values {
				if key, ok := envKey(k); ok {
					flat[key] = envValue(key, v)
				}
			}
		}
	}

	for _, kv := range e.environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key, ok := envKey(k); ok {
			flat[key] = envValue(key, v)
		}
	}

	return maps.Unflatten(flat, "."), nil
}

// envKey maps SCRUBBER_SCRUB__SEEK_STEP to scrub.seek_step.
func envKey(name string) (string, bool) {
	if !strings.HasPrefix(name, EnvPrefix) {
		return "", false
	}
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if key == "" {
		return "", false
	}
	return strings.ReplaceAll(key, "__", "."), true
}

// envValue splits key lists: SCRUBBER_KEYS__SEEK_BACK=j,left.
func envValue(key, v string) any {
	if !strings.HasPrefix(key, "keys.") {
		return v
	}
	parts := strings.Split(v, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
