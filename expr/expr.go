// File: expr.go
// Title: Expression Front-End Engine
// Description: Provides the high-level API for turning expression text
//              into an abstract syntax tree. Coordinates the lexer and
//              parser and exposes the token sequence for diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial engine implementation

package expr

import (
	"fmt"
	"time"

	mrwlog "github.com/msto63/mRW/core/log"
	mrwast "github.com/msto63/mRW/expr/ast"
	mrwparser "github.com/msto63/mRW/expr/parser"
)

// DefaultMaxInputLength limits input size when no option is given
const DefaultMaxInputLength = 4096

// Engine coordinates lexing and parsing of expression sources
type Engine struct {
	parser  *mrwparser.Parser
	logger  *mrwlog.Logger
	options Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for front-end operations (optional, defaults to default logger)
	Logger *mrwlog.Logger

	// MaxInputLength limits input length (default: 4096)
	MaxInputLength int
}

// Result represents the outcome of running the front-end on one source
type Result struct {
	// SourceName is the label the input was submitted under
	SourceName string

	// Source is the raw input text
	Source string

	// Tokens is the token sequence, nil when lexing failed
	Tokens []mrwparser.Token

	// Node is the AST root, nil when lexing or parsing failed
	Node mrwast.Expr

	// Duration is the time spent lexing and parsing
	Duration time.Duration
}

// New creates a new front-end engine with the given options
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mrwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	logger := opts.Logger.WithField("component", "expr-engine")

	return &Engine{
		parser:  mrwparser.New(mrwparser.Options{Logger: logger}),
		logger:  logger,
		options: opts,
	}
}

// Run lexes and parses one source. A lexing failure returns before the
// parser is invoked; the partial Result then carries no tokens. The call
// has no state across invocations: the same input always yields the same
// outcome.
func (e *Engine) Run(sourceName, text string) (*Result, error) {
	if len(text) > e.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(text), e.options.MaxInputLength)
	}

	start := time.Now()
	result := &Result{
		SourceName: sourceName,
		Source:     text,
	}

	e.logger.Debug("tokenizing input", mrwlog.Fields{
		"source": sourceName,
		"length": len(text),
	})

	tokens, lexErr := mrwparser.Tokenize(sourceName, text)
	if lexErr != nil {
		e.logger.Debug("lexing failed", mrwlog.Fields{
			"source": sourceName,
			"error":  lexErr.Error(),
		})
		result.Duration = time.Since(start)
		return result, lexErr
	}
	result.Tokens = tokens

	node, parseErr := e.parser.Parse(tokens)
	result.Duration = time.Since(start)

	if parseErr != nil {
		return result, parseErr
	}

	result.Node = node
	e.logger.Debug("parse completed", mrwlog.Fields{
		"source":   sourceName,
		"node":     node.String(),
		"duration": result.Duration,
	})

	return result, nil
}

// Run lexes and parses one source with a default engine and returns the
// AST root, or the position-annotated error when the input is malformed
func Run(sourceName, text string) (mrwast.Expr, error) {
	result, err := New(Options{}).Run(sourceName, text)
	if err != nil {
		return nil, err
	}
	return result.Node, nil
}
