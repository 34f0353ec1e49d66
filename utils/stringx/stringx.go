// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string helpers used across mRW.
//              Focuses on Unicode safety and predictable behavior for
//              validation and display formatting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens a string to at most maxLen runes. When truncation
// happens, the result ends with "..." and still fits within maxLen.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FirstLine returns the input up to (but not including) the first newline.
func FirstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// Quote wraps a string in single quotes for use in diagnostics.
func Quote(s string) string {
	return "'" + s + "'"
}
