// File: doc.go
// Title: config Package Documentation
// Description: Documents the configuration package that loads TOML and
//              YAML settings for the mrw CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

/*
Package config loads mRW configuration from TOML or YAML files.

The format is detected from the file extension (.toml is the default,
.yaml/.yml selects YAML). Values are accessed with dot notation and a
caller-supplied default:

	cfg, err := config.Load("mrw.toml")
	level := cfg.GetString("log.level", "info")
	prompt := cfg.GetString("repl.prompt", "mrw> ")

Getters never fail; a missing or unconvertible value yields the default.
*/
package config
