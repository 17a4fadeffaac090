// Package config loads the slm-test configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"
)

// Config is the slm-test configuration.
type Config struct {
	// Library is the path of the display library, empty for the platform default.
	Library string `yaml:"library"`

	// Screen is the display the SLM is attached to.
	Screen uint32 `yaml:"screen"`

	// Bits is the level depth, 8 or 10.
	Bits int `yaml:"bits"`

	// NarrowEncoding is the IANA name of the encoding for byte string paths, e.g. windows-1252.
	NarrowEncoding string `yaml:"narrow_encoding"`

	// Offset is applied before displaying, if set.
	Offset *Offset `yaml:"offset"`

	Trigger Trigger `yaml:"trigger"`
}

// Offset of the image on the screen, in pixels.
type Offset struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// Trigger is an optional GPIO pin pulsed after each displayed frame.
type Trigger struct {
	Pin   string        `yaml:"pin"`
	Width time.Duration `yaml:"width"`
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Screen: 1,
		Bits:   10,
		Trigger: Trigger{
			Width: time.Millisecond,
		},
	}
}

// DefaultConfigPath is ~/.config/slm/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "slm", "config.yaml"), nil
}

// Load reads the configuration at path. If path is empty, the default path is used and a
// missing file yields the default configuration.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result. Unknown keys are an
// error.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Screen == 0 {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("screen must be >= 1")}
	}
	switch c.Bits {
	case 8, 10:
	default:
		return &ValidationError{Path: "bits", Err: fmt.Errorf("bits must be 8 or 10, got %d", c.Bits)}
	}
	if c.Trigger.Width < 0 {
		return &ValidationError{Path: "trigger.width", Err: fmt.Errorf("trigger width must be >= 0")}
	}
	if _, err := c.Encoding(); err != nil {
		return &ValidationError{Path: "narrow_encoding", Err: err}
	}
	return nil
}

// Encoding returns the narrow path encoding, or nil for UTF-8.
func (c *Config) Encoding() (encoding.Encoding, error) {
	if c.NarrowEncoding == "" {
		return nil, nil
	}
	e, err := ianaindex.IANA.Encoding(c.NarrowEncoding)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("encoding %q is not supported", c.NarrowEncoding)
	}
	return e, nil
}
