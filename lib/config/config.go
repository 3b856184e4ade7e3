// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the configuration file for [Load].
const EnvironmentVariable = "CMDGROUP_CONFIG"

// Config is the configuration for programs built on lib/cli.
type Config struct {
	// Help controls help rendering.
	Help HelpConfig `yaml:"help" json:"help"`

	// Log controls framework diagnostics.
	Log LogConfig `yaml:"log" json:"log"`

	// ArgDescriptions is the base description mapping under the root
	// group's own. Values undergo ${VAR} expansion.
	ArgDescriptions map[string]string `yaml:"arg_descriptions" json:"arg_descriptions"`
}

// HelpConfig configures help output.
type HelpConfig struct {
	// Color is one of "auto", "always", "never".
	// Default: auto
	Color string `yaml:"color" json:"color"`

	// Width is the column at which option help wraps. 0 detects the
	// terminal width, falling back to $COLUMNS and then 80.
	// Default: 0
	Width int `yaml:"width" json:"width"`
}

// LogConfig configures the framework logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	// Default: warn
	Level string `yaml:"level" json:"level"`

	// Format is one of "auto", "text", "json". Auto picks text on a
	// terminal and JSON otherwise.
	// Default: auto
	Format string `yaml:"format" json:"format"`
}

// Default returns the default configuration. It is the base that a
// loaded file is merged into, and the configuration used when no file
// is named at all.
func Default() *Config {
	return &Config{
		Help: HelpConfig{
			Color: "auto",
			Width: 0,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
		ArgDescriptions: map[string]string{},
	}
}

// Load loads configuration from the file named by CMDGROUP_CONFIG.
//
// There are no fallbacks: if CMDGROUP_CONFIG is not set, this fails.
// Programs that run without a configuration file use [Default] instead
// of calling Load.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a YAML or JSON config file", EnvironmentVariable)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, validates
// it, and expands variables in description strings.
//
// Files ending in .json or .jsonc may contain comments and trailing
// commas; everything else is read as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes configuration from data. extension selects the format
// the same way [LoadFile] does (".json" and ".jsonc" are JSONC). Unknown
// keys are errors.
func Parse(data []byte, extension string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(extension) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	if cfg.ArgDescriptions == nil {
		cfg.ArgDescriptions = map[string]string{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// description strings.
func (c *Config) expandVariables() {
	for name, description := range c.ArgDescriptions {
		c.ArgDescriptions[name] = expandVars(description)
	}
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	switch c.Help.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("invalid help.color: %q (want auto, always, or never)", c.Help.Color))
	}

	if c.Help.Width < 0 {
		errs = append(errs, fmt.Errorf("invalid help.width: %d (must not be negative)", c.Help.Width))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log.level: %q (want debug, info, warn, or error)", c.Log.Level))
	}

	switch c.Log.Format {
	case "auto", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log.format: %q (want auto, text, or json)", c.Log.Format))
	}

	for name := range c.ArgDescriptions {
		if name == "" {
			errs = append(errs, fmt.Errorf("arg_descriptions: empty parameter name"))
		}
	}

	return errors.Join(errs...)
}
