// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/shopspring/decimal"

	"voice-cost/core/types"
	"voice-cost/internal/errors"
	"voice-cost/internal/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "VOICE_COST_"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Defaults are the form's starting values
	Defaults DefaultsConfig `json:"defaults"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DefaultsConfig holds the starting parameters of a session
type DefaultsConfig struct {
	// CallDuration is the average call duration in minutes
	CallDuration float64 `json:"call_duration" env:"CALL_DURATION"`

	// TotalMinutes is the volume to price
	TotalMinutes float64 `json:"total_minutes" env:"TOTAL_MINUTES"`

	// Margin is the markup percentage
	Margin float64 `json:"margin" env:"MARGIN"`

	// Technologies are preselected technology IDs
	Technologies []string `json:"technologies,omitempty" env:"TECHNOLOGIES" envSeparator:","`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, text, json, markdown)
	DefaultFormat string `json:"default_format" env:"FORMAT"`

	// NoColor disables ANSI colors in terminal output
	NoColor bool `json:"no_color" env:"NO_COLOR"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Defaults: DefaultsConfig{
			CallDuration: 5,
			TotalMinutes: 1000,
			Margin:       20,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.voice-cost.json
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".voice-cost.json"
	}
	return filepath.Join(homeDir, ".voice-cost.json")
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, errors.Config("parse "+path, err)
			}
		case !os.IsNotExist(err):
			return nil, errors.Config("read "+path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg fields from VOICE_COST_* environment variables
func ApplyEnv(cfg *Config) error {
	opts := env.Options{Prefix: EnvPrefix}
	if err := env.ParseWithOptions(&cfg.Defaults, opts); err != nil {
		return errors.Config("parse environment", err)
	}
	if err := env.ParseWithOptions(&cfg.Output, opts); err != nil {
		return errors.Config("parse environment", err)
	}
	if err := env.ParseWithOptions(&cfg.Logging, opts); err != nil {
		return errors.Config("parse environment", err)
	}
	return nil
}

// Params converts the defaults to calculation parameters
func (c *Config) Params() types.Params {
	return types.Params{
		CallDuration: decimal.NewFromFloat(c.Defaults.CallDuration),
		TotalMinutes: decimal.NewFromFloat(c.Defaults.TotalMinutes),
		Margin:       decimal.NewFromFloat(c.Defaults.Margin),
	}
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
