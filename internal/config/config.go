package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file name looked up in the working directory
// when no explicit path is given.
const DefaultFile = "tapspeed.toml"

// Config holds the settings for a tapspeed run.
type Config struct {
	// Extension marks eligible program files, e.g. ".tap".
	Extension string `toml:"extension"`
	// Glob optionally narrows the eligible files further, comma-separated
	// doublestar patterns with '!' negation.
	Glob string `toml:"glob"`
	// MinSpeed and MaxSpeed bound the accepted spindle speed in RPM.
	MinSpeed int `toml:"min_speed"`
	MaxSpeed int `toml:"max_speed"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Extension: ".tap",
		MinSpeed:  1,
		MaxSpeed:  24000,
	}
}

// Load reads the TOML config file at path, applying env-var overrides on
// top. When path is empty the TAPSPEED_CONFIG env var and then DefaultFile
// are tried; a missing file is not an error in that case, the defaults
// apply. An explicitly given path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = getenv("TAPSPEED_CONFIG", DefaultFile)
		explicit = os.Getenv("TAPSPEED_CONFIG") != ""
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// fall through to defaults
	default:
		return nil, err
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TAPSPEED_EXTENSION"); v != "" {
		c.Extension = v
	}
}

func (c *Config) normalize() {
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}
}

func (c *Config) validate() error {
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if c.MinSpeed < 1 || c.MaxSpeed < c.MinSpeed {
		return fmt.Errorf("speed range %d..%d is not valid", c.MinSpeed, c.MaxSpeed)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
