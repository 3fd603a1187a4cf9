package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/jessejeter/spanish-tools/internal/srs"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. SPANISH_TOOLS_DB=vocab.db. A double underscore descends into a
// nested section: SPANISH_TOOLS_SRS__EASE_FLOOR=1.5.
const envPrefix = "SPANISH_TOOLS_"

// Config holds the runtime configuration, resolved from defaults, an
// optional YAML file, environment variables, and command-line flags,
// in that order of precedence.
type Config struct {
	DBPath   string    `koanf:"db" validate:"required"`
	Addr     string    `koanf:"addr" validate:"required,hostname_port"`
	ReposDir string    `koanf:"repos_dir" validate:"required"`
	Drills   bool      `koanf:"drills"`
	SRS      SRSConfig `koanf:"srs"`
}

// SRSConfig exposes the scheduler constants a learner may want to tune.
type SRSConfig struct {
	EaseFloor          float64 `koanf:"ease_floor" validate:"gte=1"`
	EaseCeiling        float64 `koanf:"ease_ceiling" validate:"gtfield=EaseFloor"`
	MinIntervalDays    int     `koanf:"min_interval_days" validate:"gte=1"`
	MaxIntervalDays    int     `koanf:"max_interval_days" validate:"gtfield=MinIntervalDays"`
	MatureIntervalDays int     `koanf:"mature_interval_days" validate:"gte=1"`
}

// Default returns the built-in configuration.
func Default() *Config {
	params := srs.DefaultParams()
	return &Config{
		DBPath:   "spanish-tools.db",
		Addr:     "localhost:8080",
		ReposDir: "repos",
		SRS: SRSConfig{
			EaseFloor:          params.EaseFloor,
			EaseCeiling:        params.EaseCeiling,
			MinIntervalDays:    params.MinIntervalDays,
			MaxIntervalDays:    params.MaxIntervalDays,
			MatureIntervalDays: params.MatureIntervalDays,
		},
	}
}

// Params builds the scheduler parameters from the configured overrides.
func (c *Config) Params() *srs.Params {
	params := srs.DefaultParams()
	params.EaseFloor = c.SRS.EaseFloor
	params.EaseCeiling = c.SRS.EaseCeiling
	params.MinIntervalDays = c.SRS.MinIntervalDays
	params.MaxIntervalDays = c.SRS.MaxIntervalDays
	params.MatureIntervalDays = c.SRS.MatureIntervalDays
	return params
}

// Load resolves the configuration. path is the YAML config file; empty means
// no file. flags may be nil when no command line is involved.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		return strings.ReplaceAll(key, "__", "."), value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
