package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jsonkq/jsonkq/internal/errors"
	"github.com/jsonkq/jsonkq/internal/escaper"
	"github.com/jsonkq/jsonkq/internal/models"
)

// Config represents the complete configuration for jsonkq
type Config struct {
	QuoteStyle string       `yaml:"quote_style"`
	KeyCase    string       `yaml:"key_case"`
	Escape     EscapeConfig `yaml:"escape"`
	Output     OutputConfig `yaml:"output"`
	Dev        DevConfig    `yaml:"dev"`
}

// EscapeConfig controls which control characters the codec handles
type EscapeConfig struct {
	Tabs            bool `yaml:"tabs"`
	Newlines        bool `yaml:"newlines"`
	CarriageReturns bool `yaml:"carriage_returns"`
}

// OutputConfig controls output handling
type OutputConfig struct {
	InPlace bool `yaml:"in_place"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		QuoteStyle: "double",
		KeyCase:    "none",
		Escape: EscapeConfig{
			Tabs:            true,
			Newlines:        true,
			CarriageReturns: true,
		},
		Output: OutputConfig{
			InPlace: false,
		},
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	// Reject unknown enum values early instead of at conversion time
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonkq.yml", ".jsonkq.yaml", "jsonkq.yml", "jsonkq.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks the enum-valued fields
func (c *Config) Validate() error {
	if _, err := models.ParseQuoteStyle(c.QuoteStyle); err != nil {
		return errors.NewConfigError(fmt.Sprintf("invalid quote_style '%s'", c.QuoteStyle), err)
	}
	if _, err := models.ParseKeyCase(c.KeyCase); err != nil {
		return errors.NewConfigError(fmt.Sprintf("invalid key_case '%s'", c.KeyCase), err)
	}
	return nil
}

// Style returns the configured quote style. Validate must have accepted the
// config first; unknown values fall back to the default.
func (c *Config) Style() models.QuoteStyle {
	style, _ := models.ParseQuoteStyle(c.QuoteStyle)
	return style
}

// Case returns the configured key case, falling back to the default for
// unknown values.
func (c *Config) Case() models.KeyCase {
	keyCase, _ := models.ParseKeyCase(c.KeyCase)
	return keyCase
}

// EscapeOptions returns the codec options the config selects.
func (c *Config) EscapeOptions() escaper.Options {
	return escaper.Options{
		Tabs:            c.Escape.Tabs,
		Newlines:        c.Escape.Newlines,
		CarriageReturns: c.Escape.CarriageReturns,
	}
}
