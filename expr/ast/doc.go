// File: doc.go
// Title: ast Package Documentation
// Description: Documents the AST node types and traversal helpers for
//              parsed arithmetic expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

/*
Package ast defines the abstract syntax tree for arithmetic expressions.

There are exactly three expression variants:

  - NumberLit — an integer or float literal
  - UnaryExpr — a signed operand (+x, -x), nesting arbitrarily
  - BinaryExpr — a binary operation with one of + - * /

The variant set is closed via the unexported marker method on Expr; a
future evaluator can switch exhaustively over these three types. Each node
exclusively owns its children, so trees are acyclic by construction and
immutable once the parser returns them.

Traversal uses the visitor pattern (Accept/Visitor); TreePrinter and
NodeCounter are ready-made visitors for display and inspection.
*/
package ast
