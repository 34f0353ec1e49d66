// File: visitor_test.go
// Title: AST Visitor Unit Tests
// Description: Tests for the visitor pattern, the tree printer, and the
//              node counter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial test suite

package ast

import (
	"strings"
	"testing"
)

// sampleTree builds the tree for "2 + 3 * -4"
func sampleTree() Expr {
	return &BinaryExpr{
		Left: intLit("2", 2),
		Op:   OpAdd,
		Right: &BinaryExpr{
			Left:  intLit("3", 3),
			Op:    OpMul,
			Right: &UnaryExpr{Op: OpSub, Operand: intLit("4", 4)},
		},
	}
}

func TestTreePrinter(t *testing.T) {
	printer := NewTreePrinter()
	got := printer.Print(sampleTree())

	expected := strings.Join([]string{
		"Binary +",
		"  Number 2 (INT)",
		"  Binary *",
		"    Number 3 (INT)",
		"    Unary -",
		"      Number 4 (INT)",
	}, "\n")

	if got != expected {
		t.Errorf("Print() =\n%s\nexpected:\n%s", got, expected)
	}
}

func TestTreePrinter_FloatAndNil(t *testing.T) {
	printer := NewTreePrinter()

	if got := printer.Print(floatLit("1.5", 1.5)); got != "Number 1.5 (FLOAT)" {
		t.Errorf("Print() = %q", got)
	}
	if got := printer.Print(nil); got != "" {
		t.Errorf("Print(nil) = %q, expected empty", got)
	}

	// The printer must be reusable
	if got := printer.Print(intLit("7", 7)); got != "Number 7 (INT)" {
		t.Errorf("second Print() = %q", got)
	}
}

func TestNodeCounter(t *testing.T) {
	counter := &NodeCounter{}
	sampleTree().Accept(counter)

	if counter.Numbers != 3 {
		t.Errorf("Numbers = %d, expected 3", counter.Numbers)
	}
	if counter.Unaries != 1 {
		t.Errorf("Unaries = %d, expected 1", counter.Unaries)
	}
	if counter.Binaries != 2 {
		t.Errorf("Binaries = %d, expected 2", counter.Binaries)
	}
	if counter.Total() != 6 {
		t.Errorf("Total() = %d, expected 6", counter.Total())
	}
}

// pickyVisitor overrides a single method of BaseVisitor
type pickyVisitor struct {
	BaseVisitor
	sawNumber bool
}

func (v *pickyVisitor) VisitNumberLit(n *NumberLit) interface{} {
	v.sawNumber = true
	return n.Raw
}

func TestBaseVisitor_Embedding(t *testing.T) {
	v := &pickyVisitor{}

	if got := intLit("9", 9).Accept(v); got != "9" {
		t.Errorf("Accept returned %v, expected \"9\"", got)
	}
	if !v.sawNumber {
		t.Error("overridden method was not called")
	}

	// Non-overridden methods fall back to the no-op base
	if got := sampleTree().Accept(v); got != nil {
		t.Errorf("BaseVisitor method returned %v, expected nil", got)
	}
}
