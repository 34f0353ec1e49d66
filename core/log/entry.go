// File: entry.go
// Title: Log Entry Definition
// Description: Defines the Entry type passed to formatters together with
//              the Fields map used for structured context in log calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Custom fields
	Fields Fields
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// merged returns a new Fields map combining the receiver with extra.
// Keys in extra win on conflict.
func (f Fields) merged(extra Fields) Fields {
	if len(f) == 0 && len(extra) == 0 {
		return nil
	}

	out := make(Fields, len(f)+len(extra))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
