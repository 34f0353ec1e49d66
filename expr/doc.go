// File: doc.go
// Title: expr Package Documentation
// Description: Documents the high-level expression front-end API that
//              drives the lexer and parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

/*
Package expr is the front-end for arithmetic expressions: it turns a
source string into an abstract syntax tree, or a position-annotated error
when the input is malformed.

	node, err := expr.Run("<stdin>", "2 + 3 * 4")
	if err != nil {
	    fmt.Println(err) // e.g. Invalid Syntax: Expected ')'File <stdin>, line 1
	}

An Engine carries options (logger, input length limit) and additionally
exposes the token sequence of each run for diagnostics. There is no
evaluator here; the AST is the product.
*/
package expr
