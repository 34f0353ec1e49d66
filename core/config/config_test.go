// File: config_test.go
// Title: Configuration Unit Tests
// Description: Tests for loading TOML and YAML configuration files and
//              accessing values with dot notation and defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const tomlContent = `
[log]
level = "debug"
format = "json"

[repl]
prompt = "calc> "
show_tokens = true

[parser]
max_input_length = 1024
`

const yamlContent = `
log:
  level: warn
repl:
  prompt: "y> "
  show_tokens: false
parser:
  max_input_length: 512
`

func TestLoadFromString_TOML(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("log.level", "info"); got != "debug" {
		t.Errorf("log.level = %q, expected %q", got, "debug")
	}
	if got := cfg.GetString("repl.prompt", ""); got != "calc> " {
		t.Errorf("repl.prompt = %q, expected %q", got, "calc> ")
	}
	if got := cfg.GetBool("repl.show_tokens", false); !got {
		t.Error("repl.show_tokens should be true")
	}
	if got := cfg.GetInt("parser.max_input_length", 0); got != 1024 {
		t.Errorf("parser.max_input_length = %d, expected 1024", got)
	}
}

func TestLoadFromString_YAML(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}

	if got := cfg.GetString("log.level", "info"); got != "warn" {
		t.Errorf("log.level = %q, expected %q", got, "warn")
	}
	if got := cfg.GetBool("repl.show_tokens", true); got {
		t.Error("repl.show_tokens should be false")
	}
	if got := cfg.GetInt("parser.max_input_length", 0); got != 512 {
		t.Errorf("parser.max_input_length = %d, expected 512", got)
	}
}

func TestLoadFromString_Invalid(t *testing.T) {
	if _, err := LoadFromString("log = [unclosed", FormatTOML); err == nil {
		t.Error("expected error for invalid TOML")
	}
	if _, err := LoadFromString("log:\n  - a\n -b", FormatYAML); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "mrw.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlContent), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("format = %v, expected toml", cfg.Format())
	}
	if cfg.FilePath() != tomlPath {
		t.Errorf("filePath = %q, expected %q", cfg.FilePath(), tomlPath)
	}

	yamlPath := filepath.Join(dir, "mrw.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("format = %v, expected yaml", cfg.Format())
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := Empty()

	if got := cfg.GetString("absent.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q, expected %q", got, "fallback")
	}
	if got := cfg.GetInt("absent.key", 42); got != 42 {
		t.Errorf("GetInt default = %d, expected 42", got)
	}
	if got := cfg.GetBool("absent.key", true); !got {
		t.Error("GetBool default should be true")
	}

	// Dot path through a scalar must miss, not panic
	cfg, err := LoadFromString("log = \"plain\"", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if _, ok := cfg.Get("log.level"); ok {
		t.Error("path through scalar value should not resolve")
	}
}
