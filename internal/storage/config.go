package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .party/).
	userConfigFile = ".partyconfig.yaml"

	// Default configuration values
	DefaultDefaultQuantity = 1
	DefaultDateFormat      = "January 2, 2006 3:04 PM"
	DefaultHidePurchased   = false
)

// Config represents user configuration from .partyconfig.yaml.
// This file is user-managed and never written by party.
type Config struct {
	// DefaultQuantity is the quantity for `party item add` when --qty is not given.
	DefaultQuantity int `yaml:"default_quantity"`

	// DateFormat is the Go time layout used to display the party date.
	DateFormat string `yaml:"date_format"`

	// HidePurchased hides purchased items from `party item list` unless --all.
	HidePurchased bool `yaml:"hide_purchased"`

	// Editor overrides $VISUAL/$EDITOR for `party edit -i`.
	Editor string `yaml:"editor"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DefaultQuantity: DefaultDefaultQuantity,
		DateFormat:      DefaultDateFormat,
		HidePurchased:   DefaultHidePurchased,
	}
}

// LoadConfig loads .partyconfig.yaml if it exists, otherwise returns defaults.
// The config file is a sibling to .party/ (in the same directory).
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfig(s.root)
}

// LoadConfig loads .partyconfig.yaml from dir, falling back to defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	// Values that would make the tool unusable fall back to defaults
	if cfg.DefaultQuantity < 1 {
		cfg.DefaultQuantity = DefaultDefaultQuantity
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
