// Copyright 2026 The Makebridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads makebridge configuration from a YAML file with
// environment variable overrides. The API token is resolved in order of
// precedence: MAKE_API_KEY environment variable, config file, OS keychain.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/makebridge/makebridge/internal/makeapi"
	"github.com/makebridge/makebridge/internal/secrets"
)

// Environment variables recognized by Load and ResolveToken.
const (
	EnvAPIKey     = "MAKE_API_KEY"
	EnvZone       = "MAKE_ZONE"
	EnvConfigPath = "MAKEBRIDGE_CONFIG"
)

var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoToken is returned when no API token can be resolved from any
	// source. For `makebridge serve` this is a fatal startup condition.
	ErrNoToken = errors.New("config: no API token configured (set MAKE_API_KEY, add token to the config file, or run 'makebridge auth set')")
)

// zonePattern matches Make region identifiers such as eu1, eu2, us1.
var zonePattern = regexp.MustCompile(`^[a-z]{2}[0-9]+$`)

// Config represents the makebridge configuration.
type Config struct {
	// Token is the Make API token. Prefer the environment variable or the
	// keychain over storing it here.
	Token string `yaml:"token,omitempty"`

	// Zone selects the regional API endpoint (default: eu2).
	Zone string `yaml:"zone,omitempty"`

	// BaseURL overrides the zone-derived endpoint, for self-hosted
	// installations and testing.
	BaseURL string `yaml:"base_url,omitempty"`

	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	// Level is the log verbosity: debug, info, warn, error (default: info).
	Level string `yaml:"level,omitempty"`
}

// DefaultPath returns the default config file location,
// honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "makebridge", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "makebridge", "config.yaml"), nil
}

// Load reads configuration from the given path (or the default location
// when path is empty), applies environment overrides and defaults, and
// validates the result. A missing config file is not an error; the
// configuration then comes entirely from the environment and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	case os.IsNotExist(err):
		if explicit {
			return nil, fmt.Errorf("config: file not found: %s", path)
		}
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if token := os.Getenv(EnvAPIKey); token != "" {
		c.Token = token
	}
	if zone := os.Getenv(EnvZone); zone != "" {
		c.Zone = zone
	}
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() {
	if c.Zone == "" {
		c.Zone = makeapi.DefaultZone
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the configuration for consistency. Token absence is not
// a validation error here; it becomes one at ResolveToken time so that
// commands that do not need the API (auth, version) still work.
func (c *Config) Validate() error {
	if c.BaseURL == "" && !zonePattern.MatchString(c.Zone) {
		return fmt.Errorf("%w: invalid zone %q (expected a region like eu1, eu2, us1)", ErrInvalidConfig, c.Zone)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: invalid log level %q (must be debug, info, warn, or error)", ErrInvalidConfig, c.Log.Level)
	}

	return nil
}

// ResolveToken returns the API token from configuration, falling back to
// the OS keychain. Returns ErrNoToken when no source provides one.
func (c *Config) ResolveToken(store *secrets.TokenStore) (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}

	if store != nil && store.Available() {
		token, err := store.Get()
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, secrets.ErrTokenNotFound) {
			return "", err
		}
	}

	return "", ErrNoToken
}
