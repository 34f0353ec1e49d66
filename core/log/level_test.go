// File: level_test.go
// Title: Log Level Unit Tests
// Description: Tests for level parsing, rendering, and enablement checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial test suite

package log

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
		wantErr  bool
	}{
		{name: "Debug", input: "debug", expected: LevelDebug},
		{name: "Info", input: "info", expected: LevelInfo},
		{name: "Warn", input: "warn", expected: LevelWarn},
		{name: "Warning alias", input: "warning", expected: LevelWarn},
		{name: "Error", input: "error", expected: LevelError},
		{name: "Mixed case with spaces", input: "  DeBuG ", expected: LevelDebug},
		{name: "Empty defaults to info", input: "", expected: LevelInfo},
		{name: "Unknown", input: "loud", expected: DefaultLevel(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
		short    string
	}{
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
		if got := tt.level.ShortString(); got != tt.short {
			t.Errorf("Level(%d).ShortString() = %q, expected %q", tt.level, got, tt.short)
		}
	}
}

func TestLevel_Enabled(t *testing.T) {
	if !LevelInfo.Enabled(LevelError) {
		t.Error("error messages must pass an info-level logger")
	}
	if LevelInfo.Enabled(LevelDebug) {
		t.Error("debug messages must not pass an info-level logger")
	}
	if !LevelDebug.Enabled(LevelDebug) {
		t.Error("a level must pass itself")
	}
}
