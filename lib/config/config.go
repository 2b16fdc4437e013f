// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Embryotech
// console.
//
// Configuration is loaded from a single YAML file specified by:
//   - the EMBRYOTECH_CONFIG environment variable, or
//   - the --config flag passed to a command.
//
// There are no fallbacks or automatic discovery. When neither is set,
// built-in defaults apply. This keeps configuration deterministic and
// auditable with no hidden overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultServer is the platform API base URL used when no config file
// or flag overrides it.
const DefaultServer = "http://172.16.1.22:5001"

// DefaultRequestTimeout bounds every API round trip.
const DefaultRequestTimeout = 30 * time.Second

// Config holds the console's settings.
type Config struct {
	// Server is the base URL of the Embryotech platform API.
	Server string `yaml:"server"`

	// RequestTimeout bounds each HTTP request issued by the console.
	RequestTimeout Duration `yaml:"request_timeout"`

	// Theme selects the dashboard palette: "auto" (probe the terminal
	// background), "dark", or "light".
	Theme string `yaml:"theme"`
}

// Duration wraps time.Duration with YAML unmarshaling from the usual
// "30s" / "1m" string form.
type Duration time.Duration

// UnmarshalYAML parses a duration string node.
func (duration *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*duration = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (duration Duration) Std() time.Duration { return time.Duration(duration) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:         DefaultServer,
		RequestTimeout: Duration(DefaultRequestTimeout),
		Theme:          "auto",
	}
}

// Load reads the config file at path. When path is empty, the
// EMBRYOTECH_CONFIG environment variable is consulted; when that is
// also empty, the defaults are returned without touching the
// filesystem. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv("EMBRYOTECH_CONFIG")
	}
	configuration := Default()
	if path == "" {
		return configuration, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &configuration); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := configuration.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return configuration, nil
}

// Validate checks field values. Called by Load; exported for callers
// that assemble a Config from flags.
func (configuration Config) Validate() error {
	if configuration.Server == "" {
		return fmt.Errorf("server must not be empty")
	}
	if configuration.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", configuration.RequestTimeout)
	}
	switch configuration.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("theme must be auto, dark or light, got %q", configuration.Theme)
	}
	return nil
}
