// File: format.go
// Title: Log Output Formatters
// Description: Implements the output formats for log entries. Text output
//              is intended for interactive use, JSON output for machine
//              consumption of the mrw CLI's diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation with text and JSON formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs (default)
	FormatText Format = iota

	// FormatJSON outputs structured JSON logs
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", format)
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

// TextFormatter formats log entries as human-readable lines
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format formats a log entry as a single text line
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		// Stable field order for readable, diffable output
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
		}
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	for k, v := range entry.Fields {
		// Errors have no JSON representation of their own
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}

	return append(out, '\n'), nil
}
