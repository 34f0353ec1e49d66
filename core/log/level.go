// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output
//              of the mRW front-end. Provides parsing from configuration
//              strings and display helpers for the formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation with standard log levels

package log

import (
	"fmt"
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug provides detailed information for debugging purposes
	// Typically disabled in normal operation
	LevelDebug Level = iota

	// LevelInfo represents general informational messages
	// Standard level for normal operation logging
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	// Operations continue but attention may be required
	LevelWarn

	// LevelError represents error conditions that need attention
	// Operations may fail but the program continues
	LevelError
)

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ShortString returns a short string representation of the log level
func (l Level) ShortString() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// Enabled reports whether a message at the given level should be emitted
// by a logger configured with level l
func (l Level) Enabled(msgLevel Level) bool {
	return msgLevel >= l
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return DefaultLevel(), fmt.Errorf("unknown log level: %q", level)
	}
}
