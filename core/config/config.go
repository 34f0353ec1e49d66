// File: config.go
// Title: Configuration Management Implementation
// Description: Implements the Config type for loading and accessing
//              configuration data from TOML and YAML files. Used by the
//              mrw CLI for logging and REPL settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mrwstringx "github.com/msto63/mRW/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a loaded configuration with dot-notation access
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format
}

// Load loads configuration from a file, detecting the format from the
// file extension (.toml, .yaml, .yml)
func Load(filePath string) (*Config, error) {
	if mrwstringx.IsBlank(filePath) {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	format := detectFormat(filePath)

	cfg, err := LoadFromString(string(content), format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}
	cfg.filePath = filePath

	return cfg, nil
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// Empty returns a configuration with no values set. All getters fall
// through to their defaults.
func Empty() *Config {
	return &Config{data: make(map[string]interface{})}
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses raw bytes into a nested map
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	}

	return data, nil
}

// FilePath returns the path this configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format this configuration was parsed as
func (c *Config) Format() Format {
	return c.format
}

// Get returns the raw value at the given dot-notation key
func (c *Config) Get(key string) (interface{}, bool) {
	if c == nil || c.data == nil {
		return nil, false
	}

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		switch node := current.(type) {
		case map[string]interface{}:
			value, exists := node[part]
			if !exists {
				return nil, false
			}
			current = value
		case map[interface{}]interface{}:
			// yaml.v3 can produce interface-keyed maps for nested tables
			value, exists := node[part]
			if !exists {
				return nil, false
			}
			current = value
		default:
			return nil, false
		}
	}

	return current, true
}

// GetString returns the string value at key, or def when absent
func (c *Config) GetString(key, def string) string {
	value, ok := c.Get(key)
	if !ok {
		return def
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the integer value at key, or def when absent or not
// convertible
func (c *Config) GetInt(key string, def int) int {
	value, ok := c.Get(key)
	if !ok {
		return def
	}

	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}

// GetBool returns the boolean value at key, or def when absent or not
// convertible
func (c *Config) GetBool(key string, def bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return def
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}
