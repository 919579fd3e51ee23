package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the admin tool configuration.
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	Limits  LimitsConfig  `json:"limits" yaml:"limits"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// LimitsConfig holds the engine thresholds.
type LimitsConfig struct {
	// MaxLegNotional caps quantity × price on one side of a trade.
	MaxLegNotional float64 `json:"max_leg_notional" yaml:"max_leg_notional"`
}

// LoggingConfig selects the zap logger flavor.
type LoggingConfig struct {
	Level       string `json:"level" yaml:"level"` // debug, info, warn, error
	Development bool   `json:"development,omitempty" yaml:"development,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration out (format by extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Limits.MaxLegNotional <= 0 {
		return fmt.Errorf("limits.max_leg_notional must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with the stock thresholds.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "./refdata.sqlite",
		},
		Limits: LimitsConfig{
			MaxLegNotional: 10_000_000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
