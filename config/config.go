// Package config loads the settings of the vecidx command from a TOML file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of one conformance run
type Config struct {
	SuiteDir string `toml:"suite_dir"` // empty means search the usual locations
	Parallel int    `toml:"parallel"`  // suite files run at once, 0 runs serially
	Run      string `toml:"run"`       // only tests whose file:name contains this
	LogLevel string `toml:"log_level"`
	Trace    Trace  `toml:"trace"`
}

// Trace configures access tracing
type Trace struct {
	Enabled bool     `toml:"enabled"`
	Filters []string `toml:"filters"` // glob patterns over op names
}

// Default returns the settings used without a config file
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads a config file over the defaults. Keys the file sets that
// Config does not know are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that decode fine but make no sense
func (c Config) Validate() error {
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative, got %d", c.Parallel)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts a level name such as "debug" to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
