// File: lexer.go
// Title: Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of expression parsing.
//              Converts source text into a token sequence with exact source
//              spans. Lexing is all-or-nothing: the first illegal character
//              aborts the scan and discards all tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
)

// Lexer performs lexical analysis of a single expression source
type Lexer struct {
	text  string   // Input text
	pos   Position // Cursor over the input
	ch    byte     // Current character under examination
	atEOF bool     // True once the cursor has moved past the last character
}

// NewLexer creates a new lexer for the given source
func NewLexer(sourceName, text string) *Lexer {
	l := &Lexer{
		text: text,
		pos:  StartPosition(sourceName, text),
	}
	l.advance() // Load first character
	return l
}

// Tokenize scans the whole input and returns the token sequence terminated
// by an EOF token. On an illegal character all tokens are discarded and the
// returned error spans exactly the offending character.
func (l *Lexer) Tokenize() ([]Token, *Error) {
	var tokens []Token

	for !l.atEOF {
		switch {
		case l.ch == ' ' || l.ch == '\t':
			l.advance()

		case isDigit(l.ch) || l.ch == '.':
			tok, err := l.scanNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case l.ch == '+':
			tokens = append(tokens, l.makeToken(TokenPlus))
		case l.ch == '-':
			tokens = append(tokens, l.makeToken(TokenMinus))
		case l.ch == '*':
			tokens = append(tokens, l.makeToken(TokenMul))
		case l.ch == '/':
			tokens = append(tokens, l.makeToken(TokenDiv))
		case l.ch == '(':
			tokens = append(tokens, l.makeToken(TokenLeftParen))
		case l.ch == ')':
			tokens = append(tokens, l.makeToken(TokenRightParen))

		default:
			start := l.pos
			ch := l.ch
			l.advance()
			return nil, NewIllegalCharError(start, l.pos, fmt.Sprintf("'%c'", ch))
		}
	}

	tokens = append(tokens, Token{
		Type:  TokenEOF,
		Start: l.pos,
		End:   l.pos.Advanced(0),
	})

	return tokens, nil
}

// advance consumes the current character and loads the next one
func (l *Lexer) advance() {
	l.pos.Advance(l.ch)

	if l.pos.Index < len(l.text) {
		l.ch = l.text[l.pos.Index]
		l.atEOF = false
	} else {
		l.ch = 0
		l.atEOF = true
	}
}

// makeToken emits a single-character token at the current position and
// advances past it. The end position is the start advanced by one.
func (l *Lexer) makeToken(tokenType TokenType) Token {
	tok := Token{
		Type:  tokenType,
		Value: string(l.ch),
		Start: l.pos,
	}
	l.advance()
	tok.End = l.pos
	return tok
}

// scanNumber scans an integer or float literal. Digits and at most one dot
// are consumed; a second dot terminates the number without being consumed,
// so "1.2.3" lexes as FLOAT 1.2 followed by a number starting at ".3".
func (l *Lexer) scanNumber() (Token, *Error) {
	start := l.pos
	dots := 0
	var lexeme strings.Builder

	for !l.atEOF && (isDigit(l.ch) || l.ch == '.') {
		if l.ch == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		lexeme.WriteByte(l.ch)
		l.advance()
	}

	raw := lexeme.String()
	if raw == "." {
		// A dot with no digits on either side is no number at all
		return Token{}, NewIllegalCharError(start, l.pos, "'.'")
	}

	tokenType := TokenInt
	if dots > 0 {
		tokenType = TokenFloat
	}

	return Token{
		Type:  tokenType,
		Value: raw,
		Start: start,
		End:   l.pos,
	}, nil
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize is a convenience function that scans a complete source in one call
func Tokenize(sourceName, text string) ([]Token, *Error) {
	return NewLexer(sourceName, text).Tokenize()
}
