// Package config loads the server's optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvLogLevel overrides the log_level setting when set.
const EnvLogLevel = "COLOR_MCP_LOG_LEVEL"

// Config holds the server settings.
type Config struct {
	// LogLevel is "debug" or "info".
	LogLevel string `yaml:"log_level"`

	// PreserveKind makes color_complement return the input's encoding when a
	// call does not say otherwise.
	PreserveKind bool `yaml:"preserve_kind"`

	// DominantColorsDefault is the count used when image_dominant_colors is
	// called without one.
	DominantColorsDefault int `yaml:"dominant_colors_default"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:              "info",
		PreserveKind:          false,
		DominantColorsDefault: 5,
	}
}

// Load reads the YAML file at path over the defaults, then applies the
// environment override. An empty path skips the file.
//
// Unknown keys are rejected so typos surface at startup.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		// An empty file decodes to io.EOF; keep the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes LogLevel and checks numeric settings.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info":
	case "":
		c.LogLevel = "info"
	default:
		return fmt.Errorf("invalid log_level %q: want debug or info", c.LogLevel)
	}

	if c.DominantColorsDefault <= 0 {
		return fmt.Errorf("dominant_colors_default must be positive, got %d", c.DominantColorsDefault)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
