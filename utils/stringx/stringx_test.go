// File: stringx_test.go
// Title: stringx Unit Tests
// Description: Unit tests for the string utility functions covering blank
//              detection, truncation, and diagnostic formatting helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial test suite

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Empty string", input: "", expected: true},
		{name: "Spaces only", input: "   ", expected: true},
		{name: "Tabs and newlines", input: "\t\n ", expected: true},
		{name: "Non-blank", input: "mRW", expected: false},
		{name: "Whitespace around text", input: "  x  ", expected: false},
		{name: "Unicode whitespace", input: " ", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
			if got := IsNotBlank(tt.input); got == tt.expected {
				t.Errorf("IsNotBlank(%q) = %v, expected %v", tt.input, got, !tt.expected)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("IsEmpty(\"\") should be true")
	}
	if IsEmpty(" ") {
		t.Error("IsEmpty(\" \") should be false")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "Shorter than limit", input: "abc", maxLen: 10, expected: "abc"},
		{name: "Exactly at limit", input: "abcde", maxLen: 5, expected: "abcde"},
		{name: "Truncated with ellipsis", input: "abcdefghij", maxLen: 6, expected: "abc..."},
		{name: "Tiny limit", input: "abcdef", maxLen: 2, expected: "ab"},
		{name: "Zero limit", input: "abc", maxLen: 0, expected: ""},
		{name: "Unicode input", input: "äöüßäöüß", maxLen: 5, expected: "äö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("one\ntwo"); got != "one" {
		t.Errorf("FirstLine = %q, expected %q", got, "one")
	}
	if got := FirstLine("single"); got != "single" {
		t.Errorf("FirstLine = %q, expected %q", got, "single")
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("$"); got != "'$'" {
		t.Errorf("Quote = %q, expected %q", got, "'$'")
	}
}
