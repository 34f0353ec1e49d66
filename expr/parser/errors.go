// File: errors.go
// Title: Lexing and Parsing Errors
// Description: Defines the position-annotated error type shared by the
//              lexer and parser. Exactly two kinds exist: illegal character
//              (lexing) and invalid syntax (parsing). Errors are created at
//              the first point of failure and never mutated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial error definitions

package parser

import (
	"fmt"
)

// ErrorKind classifies a front-end error
type ErrorKind int

const (
	// IllegalCharacter reports an unrecognized character during lexing
	IllegalCharacter ErrorKind = iota

	// InvalidSyntax reports a token sequence that matches no grammar rule,
	// including unterminated parentheses and trailing tokens
	InvalidSyntax
)

// String returns the display name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case IllegalCharacter:
		return "Illegal Character"
	case InvalidSyntax:
		return "Invalid Syntax"
	default:
		return "Unknown Error"
	}
}

// Error represents a lexing or parsing failure with its source span
type Error struct {
	Kind   ErrorKind // Error classification
	Detail string    // Free-text detail, e.g. "Expected ')'"
	Start  Position  // First position of the offending span
	End    Position  // Position one past the offending span
}

// NewIllegalCharError creates a lexing error for a single offending character
func NewIllegalCharError(start, end Position, detail string) *Error {
	return &Error{
		Kind:   IllegalCharacter,
		Detail: detail,
		Start:  start,
		End:    end,
	}
}

// NewInvalidSyntaxError creates a parsing error at the given token span
func NewInvalidSyntaxError(start, end Position, detail string) *Error {
	return &Error{
		Kind:   InvalidSyntax,
		Detail: detail,
		Start:  start,
		End:    end,
	}
}

// Error implements the error interface. The rendering matches the
// established output format of the front-end, including the missing
// separator before "File".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %sFile %s, line %d",
		e.Kind, e.Detail, e.Start.SourceName, e.End.Line+1)
}
