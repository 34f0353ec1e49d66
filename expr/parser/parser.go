// File: parser.go
// Title: Recursive Descent Parser
// Description: Implements the parsing phase of the expression front-end.
//              Converts token sequences into abstract syntax trees via
//              recursive descent. Precedence is encoded structurally
//              (term binds tighter than expr), chains fold left.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	mrwlog "github.com/msto63/mRW/core/log"
	mrwast "github.com/msto63/mRW/expr/ast"
)

// Parser implements recursive descent parsing over a token sequence.
// A Parser instance is not safe for concurrent use; each Parse call
// resets its cursor state.
type Parser struct {
	tokens  []Token // Token sequence, EOF-terminated
	idx     int     // Cursor into tokens
	current Token   // Current token
	logger  *mrwlog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mrwlog.Logger
}

// New creates a new parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mrwlog.GetDefault()
	}

	return &Parser{
		logger: opts.Logger.WithField("component", "expr-parser"),
	}
}

// Parse consumes a token sequence and returns the AST root. The sequence
// must end with an EOF token, which the lexer guarantees. The first error
// wins: no rule continues construction once a sub-rule has failed.
func (p *Parser) Parse(tokens []Token) (mrwast.Expr, *Error) {
	p.tokens = tokens
	p.idx = -1
	p.advance()

	p.logger.Debug("starting parse", mrwlog.Fields{
		"tokens": len(tokens),
	})

	node, err := p.parseExpr()
	if err != nil {
		p.logger.Debug("parse failed", mrwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	// A valid expression followed by anything but EOF is trailing garbage
	if p.current.Type != TokenEOF {
		return nil, NewInvalidSyntaxError(p.current.Start, p.current.End,
			"Expected '+' '-' '*' or '/'")
	}

	return node, nil
}

// parseExpr parses: expr -> term (( PLUS | MINUS ) term)*
func (p *Parser) parseExpr() (mrwast.Expr, *Error) {
	return p.parseBinOp(p.parseTerm, TokenPlus, TokenMinus)
}

// parseTerm parses: term -> factor (( MUL | DIV ) factor)*
func (p *Parser) parseTerm() (mrwast.Expr, *Error) {
	return p.parseBinOp(p.parseFactor, TokenMul, TokenDiv)
}

// parseFactor parses: factor -> INT | FLOAT
//
//	| ( PLUS | MINUS ) factor
//	| LPAREN expr RPAREN
func (p *Parser) parseFactor() (mrwast.Expr, *Error) {
	tok := p.current

	switch tok.Type {
	case TokenInt, TokenFloat:
		p.advance()
		return p.numberLit(tok)

	case TokenPlus, TokenMinus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &mrwast.UnaryExpr{
			Op:      tok.Value,
			Operand: operand,
			Pos:     astPosition(tok.Start),
		}, nil

	case TokenLeftParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenRightParen {
			return nil, NewInvalidSyntaxError(p.current.Start, p.current.End,
				"Expected ')'")
		}
		p.advance()
		return inner, nil

	default:
		return nil, NewInvalidSyntaxError(tok.Start, tok.End,
			"Expected int or float")
	}
}

// parseBinOp folds a left-associative chain of binary operators over the
// given operand rule: a op b op c becomes ((a op b) op c).
func (p *Parser) parseBinOp(operand func() (mrwast.Expr, *Error), ops ...TokenType) (mrwast.Expr, *Error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.current.Is(ops...) {
		op := p.current
		p.advance()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &mrwast.BinaryExpr{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   astPosition(op.Start),
		}
	}

	return left, nil
}

// numberLit converts a number token into a literal node
func (p *Parser) numberLit(tok Token) (mrwast.Expr, *Error) {
	lit := &mrwast.NumberLit{
		Raw:     tok.Value,
		IsFloat: tok.Type == TokenFloat,
		Pos:     astPosition(tok.Start),
		End:     astPosition(tok.End),
	}

	if lit.IsFloat {
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, NewInvalidSyntaxError(tok.Start, tok.End,
				fmt.Sprintf("invalid number literal %q", tok.Value))
		}
		lit.Float = value
		return lit, nil
	}

	value, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, NewInvalidSyntaxError(tok.Start, tok.End,
			fmt.Sprintf("invalid number literal %q", tok.Value))
	}
	lit.Int = value
	return lit, nil
}

// advance moves to the next token. Past the final EOF the cursor stays put.
func (p *Parser) advance() {
	p.idx++
	if p.idx < len(p.tokens) {
		p.current = p.tokens[p.idx]
	}
}

// astPosition converts a lexer position into an AST position
func astPosition(pos Position) mrwast.Position {
	return mrwast.Position{
		Line:   pos.Line,
		Column: pos.Column,
		Offset: pos.Index,
	}
}

// Parse is a convenience function that parses a token sequence with a
// default parser
func Parse(tokens []Token) (mrwast.Expr, *Error) {
	return New(Options{}).Parse(tokens)
}
