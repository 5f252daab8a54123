// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for askwire.
//
// Configuration sources (in order of precedence):
//   - Environment variables (ASKWIRE_*)
//   - ~/.askwire/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete askwire configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version"`

	// Backend holds the answers API connection settings.
	Backend BackendConfig `toml:"backend"`

	// UI holds presentation settings.
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains the answers API connection settings.
type BackendConfig struct {
	// BaseURL is the base URL of the Askwire API.
	BaseURL string `toml:"base_url"`
	// APIKey is the bearer token sent with each request. Optional.
	APIKey string `toml:"api_key"`
	// TimeoutSecs is the request timeout in seconds. Clamped to 5..300.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Wrap is the word-wrap width for rendered answers (0 = terminal width).
	Wrap int `toml:"wrap"`
	// ShowTimestamps toggles per-message timestamps in the transcript.
	ShowTimestamps bool `toml:"show_timestamps"`
}

// Timeout validation bounds, in seconds.
const (
	MinTimeoutSecs = 5
	MaxTimeoutSecs = 300
)

// Environment variable overrides.
const (
	EnvBaseURL     = "ASKWIRE_BASE_URL"
	EnvAPIKey      = "ASKWIRE_API_KEY"
	EnvTimeoutSecs = "ASKWIRE_TIMEOUT_SECS"
)

// ErrInvalidBaseURL indicates the configured base URL cannot be parsed.
var ErrInvalidBaseURL = errors.New("invalid backend base URL")

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Backend: BackendConfig{
			BaseURL:     "https://api.askwire.dev",
			TimeoutSecs: 60,
		},
		UI: UIConfig{
			Wrap:           100,
			ShowTimestamps: false,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the askwire configuration directory (~/.askwire).
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".askwire"), nil
}

// ConfigPath returns the path of the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from the default path, applies environment
// overrides, and validates the result. A missing file is not an error; the
// defaults are used.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies ASKWIRE_* environment variables on top of the
// file values.
func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.Backend.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.Backend.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeoutSecs)); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	base := strings.TrimSpace(c.Backend.BaseURL)
	if base == "" {
		return ErrInvalidBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Backend.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidBaseURL, parsed.Scheme)
	}
	c.Backend.BaseURL = strings.TrimSuffix(base, "/")

	if c.Backend.TimeoutSecs < MinTimeoutSecs {
		c.Backend.TimeoutSecs = MinTimeoutSecs
	}
	if c.Backend.TimeoutSecs > MaxTimeoutSecs {
		c.Backend.TimeoutSecs = MaxTimeoutSecs
	}

	if c.UI.Wrap < 0 {
		c.UI.Wrap = 0
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path, creating the directory
// if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Redacted returns a copy safe for display, with the API key masked.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Backend.APIKey != "" {
		out.Backend.APIKey = fmt.Sprintf("[redacted, length=%d]", len(c.Backend.APIKey))
	}
	return &out
}
