// File: doc.go
// Title: parser Package Documentation
// Description: Documents the lexical analyzer and parser that turn
//              arithmetic expression text into abstract syntax trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for arithmetic
expressions.

The lexer converts source text into a token sequence with exact source
spans; the parser runs recursive descent over that sequence:

	expr   -> term (( PLUS | MINUS ) term)*
	term   -> factor (( MUL | DIV ) factor)*
	factor -> INT | FLOAT
	        | ( PLUS | MINUS ) factor
	        | LPAREN expr RPAREN

Multiplication and division bind tighter than addition and subtraction
because term is the unit folded by expr; chains of equal precedence fold
left-associatively.

Failures carry exact source spans as *Error values with two kinds:
IllegalCharacter from the lexer and InvalidSyntax from the parser. Lexing
is all-or-nothing, the first error aborts the scan, and a lexing failure
prevents parsing entirely.
*/
package parser
