// Package config loads the semvet.toml tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "semvet.toml"

// Config controls tool behavior that is policy, not input: the pre-1.0 bump
// convention, output coloring and the default output format.
type Config struct {
	// ZeroVer treats the minor component of 0.x versions as the breaking
	// slot when recommending bumps.
	ZeroVer bool `toml:"zerover"`
	// Color is one of auto, always, never.
	Color string `toml:"color"`
	// Format is the default output format: text or json.
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ZeroVer: true,
		Color:   "auto",
		Format:  "text",
	}
}

// Load reads a semvet.toml. Missing keys keep their defaults; unknown keys
// are rejected so typos do not silently change policy.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown configuration key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault loads the given path, or semvet.toml from the working
// directory when path is empty, or the defaults when neither file exists.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if _, err := os.Stat(DefaultFileName); err == nil {
		return Load(DefaultFileName)
	}

	return Default(), nil
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}

	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (expected text or json)", c.Format)
	}

	return nil
}
