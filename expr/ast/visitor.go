// File: visitor.go
// Title: AST Visitor Pattern
// Description: Implements the visitor pattern for traversing expression
//              trees, together with the concrete visitors used by the CLI
//              and tests: a tree printer and a node counter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial visitor implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor defines the interface for AST visitors
type Visitor interface {
	VisitNumberLit(n *NumberLit) interface{}
	VisitUnaryExpr(u *UnaryExpr) interface{}
	VisitBinaryExpr(b *BinaryExpr) interface{}
}

// Accept implementations

func (n *NumberLit) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberLit(n)
}

func (u *UnaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpr(u)
}

func (b *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(b)
}

// BaseVisitor provides no-op implementations of all visit methods.
// Embed it to implement only the methods a visitor cares about.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitNumberLit(n *NumberLit) interface{}   { return nil }
func (v *BaseVisitor) VisitUnaryExpr(u *UnaryExpr) interface{}   { return nil }
func (v *BaseVisitor) VisitBinaryExpr(b *BinaryExpr) interface{} { return nil }

// TreePrinter is a visitor that renders an expression tree as indented
// lines, one node per line, children indented below their parent.
type TreePrinter struct {
	Indent string // Indentation unit, defaults to two spaces

	builder strings.Builder
	depth   int
}

// NewTreePrinter creates a tree printer with default indentation
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{Indent: "  "}
}

// Print renders the given expression tree
func (p *TreePrinter) Print(expr Expr) string {
	if expr == nil {
		return ""
	}

	p.builder.Reset()
	p.depth = 0
	expr.Accept(p)
	return strings.TrimRight(p.builder.String(), "\n")
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.builder.WriteString(strings.Repeat(p.Indent, p.depth))
	fmt.Fprintf(&p.builder, format, args...)
	p.builder.WriteString("\n")
}

// VisitNumberLit renders a number leaf
func (p *TreePrinter) VisitNumberLit(n *NumberLit) interface{} {
	kind := "INT"
	if n.IsFloat {
		kind = "FLOAT"
	}
	p.line("Number %s (%s)", n.Raw, kind)
	return nil
}

// VisitUnaryExpr renders the operator and descends into the operand
func (p *TreePrinter) VisitUnaryExpr(u *UnaryExpr) interface{} {
	p.line("Unary %s", u.Op)
	p.depth++
	u.Operand.Accept(p)
	p.depth--
	return nil
}

// VisitBinaryExpr renders the operator and descends into both operands
func (p *TreePrinter) VisitBinaryExpr(b *BinaryExpr) interface{} {
	p.line("Binary %s", b.Op)
	p.depth++
	b.Left.Accept(p)
	b.Right.Accept(p)
	p.depth--
	return nil
}

// NodeCounter counts nodes by variant while traversing a tree
type NodeCounter struct {
	Numbers  int
	Unaries  int
	Binaries int
}

// VisitNumberLit counts a number literal
func (c *NodeCounter) VisitNumberLit(n *NumberLit) interface{} {
	c.Numbers++
	return nil
}

// VisitUnaryExpr counts a unary expression and descends into its operand
func (c *NodeCounter) VisitUnaryExpr(u *UnaryExpr) interface{} {
	c.Unaries++
	if u.Operand != nil {
		u.Operand.Accept(c)
	}
	return nil
}

// VisitBinaryExpr counts a binary expression and descends into both operands
func (c *NodeCounter) VisitBinaryExpr(b *BinaryExpr) interface{} {
	c.Binaries++
	if b.Left != nil {
		b.Left.Accept(c)
	}
	if b.Right != nil {
		b.Right.Accept(c)
	}
	return nil
}

// Total returns the total number of counted nodes
func (c *NodeCounter) Total() int {
	return c.Numbers + c.Unaries + c.Binaries
}
