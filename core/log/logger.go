// File: logger.go
// Title: Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields and selectable output formats for the
//              mRW front-end and CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields

	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:     DefaultLevel(),
		formatter: NewTextFormatter(),
		output:    os.Stderr,
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    config.Output,
		name:      config.Name,
	}

	if config.Output == nil {
		logger.output = os.Stderr
	}

	return logger
}

// clone returns a copy of the logger sharing output and formatter
func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.merged(nil),
	}
}

// WithLevel returns a logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a logger with the given output format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a logger writing to the given destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	return clone
}

// WithName returns a logger with the given name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a logger that includes the given field in all entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a logger that includes the given fields in all entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	clone.contextFields = l.contextFields.merged(fields)
	return clone
}

// Level returns the logger's minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, fields...)
}

// log builds an entry and writes it through the formatter
func (l *Logger) log(level Level, message string, fields ...Fields) {
	if !l.level.Enabled(level) {
		return
	}

	entryFields := l.contextFields
	for _, f := range fields {
		entryFields = entryFields.merged(f)
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    l.name,
		Fields:    entryFields,
	}

	formatted, err := l.formatter.Format(entry)
	if err != nil {
		// Formatting failures must never take the program down;
		// fall back to the bare message.
		formatted = []byte(level.ShortString() + " " + message + "\n")
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output.Write(formatted)
}

// Default logger management

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMutex  sync.RWMutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultOnce.Do(func() {
		defaultMutex.Lock()
		defer defaultMutex.Unlock()
		if defaultLogger == nil {
			defaultLogger = New()
		}
	})

	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}

	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}
