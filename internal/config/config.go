// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds process-level settings. User preferences live in
// .partyconfig.yaml instead; see storage.Config.
type Config struct {
	// Dir is the directory containing .party/.
	Dir string `envconfig:"PARTY_DIR" default:"."`

	Log struct {
		Level  string `envconfig:"PARTY_LOG_LEVEL" default:"warn"`
		Format string `envconfig:"PARTY_LOG_FORMAT" default:"text"`
	}
}

// Load reads a .env file if one exists, then the environment. Variables
// already set in the environment take precedence over the .env file.
// When envFiles is empty, ".env" in the working directory is tried and may be
// absent. Named files must exist.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid PARTY_LOG_LEVEL %q (expected debug, info, warn or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid PARTY_LOG_FORMAT %q (expected text or json)", c.Log.Format)
	}

	if c.Dir == "" {
		return fmt.Errorf("PARTY_DIR must not be empty")
	}
	return nil
}
