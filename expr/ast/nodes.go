// File: nodes.go
// Title: AST Node Definitions
// Description: Defines the AST node types produced by the expression
//              parser: number literals, unary operations, and binary
//              operations. The set of variants is closed; exhaustive
//              handling is enforced through the marker method.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strconv"

	mrwstringx "github.com/msto63/mRW/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-like representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the source code.
// Line and Column are 0-based; display output adds 1 to the line.
type Position struct {
	Line   int // Line number (0-based)
	Column int // Column number (0-based)
	Offset int // Byte offset (0-based)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// Operators used by UnaryExpr and BinaryExpr
const (
	OpAdd = "+"
	OpSub = "-"
	OpMul = "*"
	OpDiv = "/"
)

// NumberLit represents an integer or float literal
type NumberLit struct {
	Raw     string   // Raw lexeme, e.g. "42" or "3.14"
	IsFloat bool     // True for FLOAT literals
	Int     int64    // Parsed value when IsFloat is false
	Float   float64  // Parsed value when IsFloat is true
	Pos     Position // Position of the first character
	End     Position // Position one past the last character
}

// UnaryExpr represents a signed operand (+x or -x); signs nest arbitrarily
type UnaryExpr struct {
	Op      string   // Operator, "+" or "-"
	Operand Expr     // Operand expression
	Pos     Position // Position of the operator
}

// BinaryExpr represents a binary operation. Chains of equal precedence
// fold left-deepening: a - b - c parses as (a - b) - c.
type BinaryExpr struct {
	Left  Expr     // Left operand
	Op    string   // Operator, one of + - * /
	Right Expr     // Right operand
	Pos   Position // Position of the operator
}

// Marker methods

func (n *NumberLit) exprNode()  {}
func (u *UnaryExpr) exprNode()  {}
func (b *BinaryExpr) exprNode() {}

// NumberLit implementation

func (n *NumberLit) String() string {
	return n.Raw
}

func (n *NumberLit) Position() Position {
	return n.Pos
}

func (n *NumberLit) Validate() error {
	if mrwstringx.IsBlank(n.Raw) {
		return fmt.Errorf("number literal has empty lexeme")
	}

	if n.IsFloat {
		if _, err := strconv.ParseFloat(n.Raw, 64); err != nil {
			return fmt.Errorf("invalid float lexeme %q: %w", n.Raw, err)
		}
		return nil
	}

	if _, err := strconv.ParseInt(n.Raw, 10, 64); err != nil {
		return fmt.Errorf("invalid integer lexeme %q: %w", n.Raw, err)
	}
	return nil
}

// Value returns the literal's numeric value as float64 regardless of kind
func (n *NumberLit) Value() float64 {
	if n.IsFloat {
		return n.Float
	}
	return float64(n.Int)
}

// UnaryExpr implementation

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Operand)
}

func (u *UnaryExpr) Position() Position {
	return u.Pos
}

func (u *UnaryExpr) Validate() error {
	if u.Op != OpAdd && u.Op != OpSub {
		return fmt.Errorf("invalid unary operator %q", u.Op)
	}
	if u.Operand == nil {
		return fmt.Errorf("unary expression has no operand")
	}
	return u.Operand.Validate()
}

// BinaryExpr implementation

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (b *BinaryExpr) Position() Position {
	return b.Pos
}

func (b *BinaryExpr) Validate() error {
	switch b.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
	default:
		return fmt.Errorf("invalid binary operator %q", b.Op)
	}

	if b.Left == nil || b.Right == nil {
		return fmt.Errorf("binary expression is missing an operand")
	}

	if err := b.Left.Validate(); err != nil {
		return err
	}
	return b.Right.Validate()
}
