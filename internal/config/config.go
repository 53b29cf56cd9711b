package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppName names the config, state and environment namespaces.
const AppName = "scrubber"

type Config struct {
	File  string `koanf:"file"`  // track to open when none is given on the command line
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	Scrub  ScrubConfig  `koanf:"scrub"`
	Player PlayerConfig `koanf:"player"`
	Theme  ThemeConfig  `koanf:"theme"`
	Log    LogConfig    `koanf:"log"`
	MPRIS  MPRISConfig  `koanf:"mpris"`

	// Keys rebinds actions, e.g. seek_back = ["j", "left"]
	Keys map[string][]string `koanf:"keys"`

	// Files lists the config files that were loaded, lowest priority first.
	Files []string `koanf:"-"`
}

// ScrubConfig holds the timeline bar's interaction settings.
type ScrubConfig struct {
	SeekStep      float64  `koanf:"seek_step"`      // percentage points per arrow key (default: 5)
	DragThreshold *float64 `koanf:"drag_threshold"` // cells before a press becomes a drag, 0 allowed (default: 3)
	InputMode     string   `koanf:"input_mode"`     // "select" or "scrub" (default: "select")
	Platform      string   `koanf:"platform"`       // only "generic": terminal mice have no touch layer (default: "generic")
	HomeEnd       *bool    `koanf:"home_end"`       // home/end seek to the bounds (default: true)
	TickMillis    int      `koanf:"tick_ms"`        // position refresh interval (default: 200)
}

// PlayerConfig holds audio settings.
type PlayerConfig struct {
	Volume     *float64 `koanf:"volume"`      // 0.0-1.0 (default: 1.0)
	VolumeStep float64  `koanf:"volume_step"` // per volume key (default: 0.05)
}

// ThemeConfig overrides theme colors ("#rrggbb" or ANSI numbers).
type ThemeConfig struct {
	Primary   string `koanf:"primary"`
	Secondary string `koanf:"secondary"`
	Selection string `koanf:"selection"`
	Options   string `koanf:"options"`
	Muted     string `koanf:"muted"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/scrubber/scrubber.log
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// MPRISConfig controls the desktop media key integration.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit config file, loaded last among files. It must exist.
	Path string
	// SearchPaths replaces the default config file locations.
	SearchPaths []string
	// EnvFile is a dotenv file whose SCRUBBER_ variables override files.
	// Defaults to ".env"; a missing file is ignored.
	EnvFile string
	// Environ replaces os.Environ, for tests.
	Environ []string
}

// Load reads configuration from the default locations and the environment.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions reads configuration, in increasing priority: config files
// in SearchPaths, the explicit Path, the dotenv file, the environment.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	paths := opts.SearchPaths
	if paths == nil {
		paths = getConfigPaths()
	}

	var loaded []string
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	if opts.Path != "" {
		path := expandPath(opts.Path)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	if err := k.Load(EnvProvider(envFile, environ), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Files = loaded

	if cfg.File != "" {
		cfg.File = expandPath(cfg.File)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is returned for values outside their allowed set.
var ErrInvalid = errors.New("invalid config")

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Scrub.InputMode) {
	case "", "select", "scrub":
	default:
		return fmt.Errorf("%w: scrub.input_mode %q (want select or scrub)", ErrInvalid, c.Scrub.InputMode)
	}
	switch strings.ToLower(c.Scrub.Platform) {
	case "", "generic":
	case "ios":
		return fmt.Errorf("%w: scrub.platform %q needs touch layer coordinates, which terminal mouse input lacks", ErrInvalid, c.Scrub.Platform)
	default:
		return fmt.Errorf("%w: scrub.platform %q (want generic)", ErrInvalid, c.Scrub.Platform)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/scrubber/config.toml
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultLogPath returns $XDG_STATE_HOME/scrubber/scrubber.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// GetScrubConfig returns the scrub configuration with defaults applied.
func (c *Config) GetScrubConfig() ScrubConfig {
	cfg := c.Scrub

	if cfg.SeekStep <= 0 || cfg.SeekStep > 100 {
		cfg.SeekStep = 5
	}
	if cfg.DragThreshold == nil || *cfg.DragThreshold < 0 {
		cfg.DragThreshold = ptr(3.0)
	}
	cfg.InputMode = strings.ToLower(cfg.InputMode)
	if cfg.InputMode == "" {
		cfg.InputMode = "select"
	}
	cfg.Platform = strings.ToLower(cfg.Platform)
	if cfg.Platform == "" {
		cfg.Platform = "generic"
	}
	if cfg.HomeEnd == nil {
		cfg.HomeEnd = ptr(true)
	}
	if cfg.TickMillis <= 0 {
		cfg.TickMillis = 200
	}
	return cfg
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	if cfg.Volume == nil {
		cfg.Volume = ptr(1.0)
	} else {
		cfg.Volume = ptr(max(0, min(*cfg.Volume, 1)))
	}
	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 1 {
		cfg.VolumeStep = 0.05
	}
	return cfg
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.File == "" {
		cfg.File = DefaultLogPath()
	}
	cfg.Level = strings.ToLower(cfg.Level)
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	return cfg
}

// MPRISEnabled reports whether the D-Bus media player interface is wanted.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

func ptr[T any](v T) *T { return &v }
