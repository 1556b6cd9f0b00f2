// Package config loads scenario settings from a JSON file with
// defaults, feeding the flag-style override map the scenario factories
// consume.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings is the file-level configuration for a training session.
type Settings struct {
	// Scenario names a registered scenario preset.
	Scenario string
	// Seed drives deterministic terrain regeneration; zero keeps the
	// preset's default.
	Seed int64
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Params holds flag-style key/value overrides passed through to the
	// per-package FromMap parsers.
	Params map[string]string
}

// Load reads settings from the given file path. An empty path returns
// the defaults without touching the filesystem.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("scenario", "harbor")
	v.SetDefault("seed", int64(0))
	v.SetDefault("logLevel", "info")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Settings{
		Scenario: v.GetString("scenario"),
		Seed:     v.GetInt64("seed"),
		LogLevel: v.GetString("logLevel"),
		Params:   v.GetStringMapString("params"),
	}, nil
}
