// File: expressions.go
// Title: Expression Productions
// Description: Comparison, additive, multiplicative, unary and power
//              levels of the expression grammar and its atoms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

var numeralKinds = map[token.Kind]ast.Kind{
	token.Number: ast.Number,
	token.Hex:    ast.Hex,
	token.Binary: ast.Binary,
	token.Octal:  ast.Octal,
}

// comparison folds chained comparisons to the left: a < b < c becomes
// CompareOp[<](CompareOp[<](a, b), c).
func (p *Parser) comparison() *ast.Node {
	left := p.expression()
	if left == nil {
		return nil
	}
	for p.current().Kind == token.Compare {
		op := p.advance()
		right := p.expression()
		if right == nil {
			return nil
		}
		left = ast.New(ast.CompareOp, op.Lexeme, position(op), left, right)
	}
	return left
}

func (p *Parser) expression() *ast.Node {
	return p.binary(p.term, token.Add, token.Minus)
}

func (p *Parser) term() *ast.Node {
	return p.binary(p.factor, token.Multiply, token.Divide, token.Percentage)
}

// binary parses a left-associative chain of operand separated by any of
// the operator kinds.
func (p *Parser) binary(operand func() *ast.Node, kinds ...token.Kind) *ast.Node {
	left := operand()
	if left == nil {
		return nil
	}
	for isOneOf(p.current().Kind, kinds) {
		op := p.advance()
		right := operand()
		if right == nil {
			return nil
		}
		left = ast.New(ast.Operator, op.Lexeme, position(op), left, right)
	}
	return left
}

func (p *Parser) factor() *ast.Node {
	if k := p.current().Kind; k == token.Add || k == token.Minus {
		op := p.advance()
		operand := p.factor()
		if operand == nil {
			return nil
		}
		return ast.New(ast.UnaryOp, op.Lexeme, position(op), operand)
	}
	return p.power()
}

// power binds tighter than a unary sign on its left and accepts one on
// its right, so -2 ** -1 is -(2 ** (-1)).
func (p *Parser) power() *ast.Node {
	base := p.atom()
	if base == nil || p.current().Kind != token.Power {
		return base
	}
	op := p.advance()
	exponent := p.factor()
	if exponent == nil {
		return nil
	}
	return ast.New(ast.Operator, op.Lexeme, position(op), base, exponent)
}

func (p *Parser) atom() *ast.Node {
	tok := p.current()

	switch {
	case tok.IsDelimiter("("):
		p.advance()
		inner := p.comparison()
		if inner == nil {
			return nil
		}
		if !p.matchDelimiter(")") {
			p.fail(p.current(), "Expected ')' after expression")
			return nil
		}
		return inner

	case tok.Kind == token.String:
		p.advance()
		return ast.New(ast.String, tok.Lexeme, position(tok))

	case tok.Kind == token.Keyword && token.IsBoolLiteral(tok.Lexeme):
		p.advance()
		return ast.New(ast.Bool, tok.Lexeme, position(tok))

	case tok.Kind.IsNumeral():
		p.advance()
		return ast.New(numeralKinds[tok.Kind], tok.Lexeme, position(tok))

	case tok.Kind == token.Identifier:
		p.advance()
		if !p.matchDelimiter("(") {
			return ast.New(ast.Identifier, tok.Lexeme, position(tok))
		}
		args, ok := p.arguments("Expected ')' after function call arguments")
		if !ok {
			return nil
		}
		return ast.New(ast.FuncCall, tok.Lexeme, position(tok)).Add(args...)
	}

	p.fail(tok, "Expected an identifier, number, or expression")
	return nil
}

// arguments parses a comma separated argument list after '(' up to and
// including ')'. closeMessage is reported when ')' is missing.
func (p *Parser) arguments(closeMessage string) ([]*ast.Node, bool) {
	var args []*ast.Node
	if p.matchDelimiter(")") {
		return args, true
	}
	for {
		arg := p.comparison()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.matchDelimiter(",") {
			break
		}
	}
	if !p.matchDelimiter(")") {
		p.fail(p.current(), closeMessage)
		return nil, false
	}
	return args, true
}

func isOneOf(kind token.Kind, kinds []token.Kind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
