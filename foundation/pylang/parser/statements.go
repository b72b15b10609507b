// File: statements.go
// Title: Statement Productions
// Description: If chains, loops, function definitions, builtin calls,
//              assignments and the simple statements.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// statement parses one statement. Simple statements that fail skip the
// rest of their line; compound statements recover on their own.
func (p *Parser) statement() *ast.Node {
	tok := p.current()

	if tok.Kind == token.Keyword {
		switch strings.ToLower(tok.Lexeme) {
		case "if":
			return p.ifChain()
		case "for":
			return p.forStmt()
		case "while":
			return p.whileStmt()
		case "def":
			return p.funcDef()
		case "elif", "else":
			p.failf(tok, "'%s' without matching 'if'", strings.ToLower(tok.Lexeme))
			p.advance()
			p.abandon()
			return nil
		}
	}

	n := p.simpleStatement()
	if n == nil {
		p.syncLine()
		return nil
	}
	if !p.atLineEnd() {
		p.failf(p.current(), "Unexpected token '%s' after statement", p.current().Lexeme)
		p.syncLine()
	}
	return n
}

func (p *Parser) simpleStatement() *ast.Node {
	tok := p.current()

	switch {
	case tok.IsKeyword("return"):
		p.advance()
		n := ast.New(ast.ReturnStmt, "", position(tok))
		if p.atLineEnd() || p.isDelimiter(":") {
			return n
		}
		value := p.comparison()
		if value == nil {
			return nil
		}
		return n.Add(value)
	case tok.IsKeyword("pass"):
		p.advance()
		return ast.New(ast.PassStmt, "", position(tok))
	case tok.IsKeyword("break"):
		p.advance()
		return ast.New(ast.BreakStmt, "", position(tok))
	case tok.IsKeyword("continue"):
		p.advance()
		return ast.New(ast.ContinueStmt, "", position(tok))
	case tok.Kind == token.Identifier && token.IsBuiltinCall(tok.Lexeme):
		return p.builtinCall()
	case tok.Kind == token.Identifier && p.peek().Kind.IsAssign():
		return p.assignment()
	}

	expr := p.comparison()
	if expr == nil {
		return nil
	}
	return ast.New(ast.ExprStmt, "", position(tok), expr)
}

// ifChain parses an if statement with its elif and else clauses. Clauses
// are appended to the IfStmt after its body.
func (p *Parser) ifChain() *ast.Node {
	ifTok := p.advance()
	node := p.conditional(ast.IfStmt, ifTok)
	if node == nil {
		return nil
	}

	for {
		next, ok := p.clauseAhead()
		if !ok {
			return node
		}
		p.pos = next
		clause := p.advance()

		if clause.IsKeyword("else") {
			if !p.matchDelimiter(":") {
				p.fail(p.current(), "Expected ':' after else")
				p.abandon()
				return node
			}
			if body, ok := p.block("else"); ok {
				node.Add(ast.New(ast.Else, "", position(clause)).Add(body...))
			}
			return node
		}

		if elif := p.conditional(ast.Elif, clause); elif != nil {
			node.Add(elif)
		}
	}
}

// clauseAhead looks past line ends for an elif or else continuing the
// current if chain and returns its index.
func (p *Parser) clauseAhead() (int, bool) {
	i := p.pos
	for i < len(p.tokens) {
		kind := p.tokens[i].Kind
		if kind == token.Newline || (kind == token.Dedent && p.options.SingleStatementBlocks) {
			i++
			continue
		}
		break
	}
	if i < len(p.tokens) && (p.tokens[i].IsKeyword("elif") || p.tokens[i].IsKeyword("else")) {
		return i, true
	}
	return 0, false
}

// conditional parses "<condition> ':' block" after an if or elif keyword
func (p *Parser) conditional(kind ast.Kind, keyword token.Token) *ast.Node {
	name := strings.ToLower(keyword.Lexeme)

	cond := p.comparison()
	if cond == nil {
		p.abandon()
		return nil
	}
	if !p.matchDelimiter(":") {
		p.colonError(fmt.Sprintf("Expected ':' after %s condition", name))
		p.abandon()
		return nil
	}
	body, ok := p.block(name)
	if !ok {
		return nil
	}
	return ast.New(kind, "", position(keyword), cond).Add(body...)
}

// colonError reports a missing colon, or a hint when an assignment
// operator stands where a comparison was meant.
func (p *Parser) colonError(message string) {
	if p.current().Kind == token.Equal {
		p.fail(p.current(), "Invalid '=' in condition; did you mean '=='?")
		return
	}
	p.fail(p.current(), message)
}

func (p *Parser) forStmt() *ast.Node {
	forTok := p.advance()

	targets := ast.New(ast.TargetList, "", position(p.current()))
	for {
		if p.current().Kind != token.Identifier {
			p.fail(p.current(), "Expected identifier in for loop")
			p.abandon()
			return nil
		}
		name := p.advance()
		targets.Add(ast.New(ast.Identifier, name.Lexeme, position(name)))
		if !p.matchDelimiter(",") {
			break
		}
	}

	if !p.current().IsKeyword("in") {
		p.fail(p.current(), "Expected 'in' in for loop")
		p.abandon()
		return nil
	}
	p.advance()

	iterable := p.comparison()
	if iterable == nil {
		p.abandon()
		return nil
	}
	if !p.matchDelimiter(":") {
		p.fail(p.current(), "Expected ':' after for header")
		p.abandon()
		return nil
	}
	body, ok := p.block("for")
	if !ok {
		return nil
	}
	return ast.New(ast.ForStmt, "", position(forTok), targets, iterable).Add(body...)
}

func (p *Parser) whileStmt() *ast.Node {
	whileTok := p.advance()

	paren := p.matchDelimiter("(")
	cond := p.comparison()
	if cond == nil {
		p.abandon()
		return nil
	}
	if paren && !p.matchDelimiter(")") {
		p.fail(p.current(), "Expected ')' after while condition")
		p.abandon()
		return nil
	}
	if !p.matchDelimiter(":") {
		p.colonError("Expected ':' after while condition")
		p.abandon()
		return nil
	}
	body, ok := p.block("while")
	if !ok {
		return nil
	}
	return ast.New(ast.WhileStmt, "", position(whileTok), cond).Add(body...)
}

func (p *Parser) funcDef() *ast.Node {
	defTok := p.advance()

	if p.current().Kind != token.Identifier {
		p.fail(p.current(), "Expected function name after def")
		p.abandon()
		return nil
	}
	nameTok := p.advance()
	name := ast.New(ast.Identifier, nameTok.Lexeme, position(nameTok))

	if !p.matchDelimiter("(") {
		p.fail(p.current(), "Expected '(' after function name")
		p.abandon()
		return nil
	}

	var params *ast.Node
	if p.current().Kind == token.Identifier {
		params = ast.New(ast.ParamList, "", position(p.current()))
		for p.current().Kind == token.Identifier {
			param := p.advance()
			params.Add(ast.New(ast.Param, param.Lexeme, position(param)))
			if !p.matchDelimiter(",") {
				break
			}
		}
	}

	if !p.matchDelimiter(")") {
		if p.current().Kind == token.Identifier {
			p.fail(p.current(), "Expected ',' between parameters")
		} else {
			p.fail(p.current(), "Expected ')' after parameters")
		}
		p.abandon()
		return nil
	}
	if !p.matchDelimiter(":") {
		p.fail(p.current(), "Expected ':' after def header")
		p.abandon()
		return nil
	}
	body, ok := p.block("def")
	if !ok {
		return nil
	}
	return ast.New(ast.FuncDef, "", position(defTok), name, params).Add(body...)
}

// builtinCall parses a call of print, len or input at statement level.
// Only print may omit the parentheses.
func (p *Parser) builtinCall() *ast.Node {
	nameTok := p.advance()
	call := ast.New(ast.FuncCall, nameTok.Lexeme, position(nameTok))

	if p.matchDelimiter("(") {
		args, ok := p.arguments("Expected ')' after arguments")
		if !ok {
			return nil
		}
		return call.Add(args...)
	}

	if !strings.EqualFold(nameTok.Lexeme, "print") {
		p.failf(p.current(), "Expected '(' after '%s'", nameTok.Lexeme)
		return nil
	}
	if p.atLineEnd() {
		p.fail(p.current(), "Expected an argument after print")
		return nil
	}
	arg := p.comparison()
	if arg == nil {
		return nil
	}
	return call.Add(arg)
}

func (p *Parser) assignment() *ast.Node {
	target := p.advance()
	op := p.advance()

	value := p.comparison()
	if value == nil {
		return nil
	}
	return ast.New(ast.Assignment, op.Lexeme, position(op),
		ast.New(ast.Identifier, target.Lexeme, position(target)), value)
}
