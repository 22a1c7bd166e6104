// Package config loads the YAML configuration of the tlvparser command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete command configuration
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DictionaryConfig selects where tag names come from
type DictionaryConfig struct {
	Path    string `yaml:"path"`    // definition file, header row + "tag,name,..." rows
	Builtin bool   `yaml:"builtin"` // use the built-in EMV table when Path is empty
}

// OutputConfig controls how a decoded record is printed
type OutputConfig struct {
	Format   string `yaml:"format"` // text, json or ber
	ASCII    bool   `yaml:"ascii"`
	Classify bool   `yaml:"classify"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Builtin: true,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads and parses the configuration file.
// Keys missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks every section of the configuration
func (c *Config) Validate() error {
	if err := c.Dictionary.Validate(); err != nil {
		return fmt.Errorf("dictionary config: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates dictionary configuration
func (d *DictionaryConfig) Validate() error {
	if d.Path == "" && !d.Builtin {
		return fmt.Errorf("path cannot be empty when builtin is disabled")
	}
	return nil
}

// Validate validates output configuration
func (o *OutputConfig) Validate() error {
	validFormats := map[string]bool{"text": true, "json": true, "ber": true}
	if !validFormats[o.Format] {
		return fmt.Errorf("format must be one of [text, json, ber], got '%s'", o.Format)
	}
	return nil
}

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("level must be one of [debug, info, warn, error], got '%s'", l.Level)
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("format must be 'json' or 'text', got '%s'", l.Format)
	}

	if l.Output == "" {
		return fmt.Errorf("output cannot be empty, use stdout, stderr or a file path")
	}

	return nil
}
