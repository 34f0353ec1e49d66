// File: token.go
// Title: Token Definitions
// Description: Defines the token types produced by the lexer together with
//              their source spans. Number tokens keep their raw lexeme; the
//              parser converts them when building literal nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial token definitions

package parser

import (
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF terminates every token sequence. It is the zero value, so
	// an uninitialized token reads as end of input.
	TokenEOF TokenType = iota

	// Literals
	TokenInt   // 123
	TokenFloat // 123.45

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenMul   // *
	TokenDiv   // /

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )
)

// String returns the string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenInt:
		return "INT"
	case TokenFloat:
		return "FLOAT"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMul:
		return "MUL"
	case TokenDiv:
		return "DIV"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its source span
type Token struct {
	Type  TokenType // Token type
	Value string    // Raw lexeme; empty for EOF
	Start Position  // Position of the first character
	End   Position  // Position one past the last character
}

// IsNumber reports whether the token is an INT or FLOAT literal
func (t Token) IsNumber() bool {
	return t.Type == TokenInt || t.Type == TokenFloat
}

// Is reports whether the token's type is one of the given types
func (t Token) Is(types ...TokenType) bool {
	for _, tt := range types {
		if t.Type == tt {
			return true
		}
	}
	return false
}

// String returns a string representation of the token.
// Number tokens render as "TYPE: value", all others as their type name.
func (t Token) String() string {
	if t.IsNumber() {
		return t.Type.String() + ": " + t.Value
	}
	return t.Type.String()
}

// TokensString renders a token sequence as a single bracketed list, the
// form the CLI prints as a debugging aid.
func TokensString(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
