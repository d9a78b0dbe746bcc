package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config is given.
const DefaultPath = "reps.yaml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidColor is returned for color modes other than auto, always and never.
var ErrInvalidColor = errors.New("invalid color mode")

// Config is the reps CLI configuration, read from reps.yaml (or .json).
type Config struct {
	LogLevel   string      `yaml:"log_level" json:"log_level"`
	Mode       string      `yaml:"mode" json:"mode"`
	NoGrip     bool        `yaml:"no_grip" json:"no_grip"`
	DefaultRep string      `yaml:"default_rep" json:"default_rep"`
	Color      string      `yaml:"color" json:"color"`
	MaxLength  int         `yaml:"max_length" json:"max_length"`
	Disable    []string    `yaml:"disable" json:"disable"`
	Serve      ServeConfig `yaml:"serve" json:"serve"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		LogLevel:   "warn",
		Mode:       "short",
		DefaultRep: "Object",
		Color:      ColorAuto,
		MaxLength:  120,
		Serve:      ServeConfig{Addr: ":8080"},
	}
}

// Load reads the configuration at path on top of Defaults.
// A missing file is not an error: the defaults are returned as they are.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks fields with a closed set of values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
}
