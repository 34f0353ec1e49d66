// File: position.go
// Title: Source Position Tracking
// Description: Implements the cursor that tracks index, line, and column
//              while the lexer consumes source text. Positions are value
//              types; storing one in a token or error copies it, so later
//              cursor movement cannot alter a recorded position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial position tracking implementation

package parser

import (
	"fmt"
)

// Position is a cursor into source text. Index counts consumed characters,
// Line and Column are 0-based (display output adds 1 to the line).
type Position struct {
	Index      int    // Byte index of the current character, -1 before the first advance
	Line       int    // Line number, 0-based
	Column     int    // Column number, 0-based, -1 before the first advance
	SourceName string // Label used in error messages (e.g. "<stdin>")
	SourceText string // Full source text the position refers to
}

// StartPosition returns the cursor state one-before-start of the given source
func StartPosition(sourceName, sourceText string) Position {
	return Position{
		Index:      -1,
		Line:       0,
		Column:     -1,
		SourceName: sourceName,
		SourceText: sourceText,
	}
}

// Advance moves the cursor past the given consumed character. A newline
// resets the column and starts the next line.
func (p *Position) Advance(ch byte) {
	p.Index++
	p.Column++

	if ch == '\n' {
		p.Column = 0
		p.Line++
	}
}

// Advanced returns a copy of the position moved past the given character
func (p Position) Advanced(ch byte) Position {
	p.Advance(ch)
	return p
}

// String returns a compact representation for diagnostics
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.SourceName, p.Line+1, p.Column+1)
}
