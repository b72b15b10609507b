// File: parser.go
// Title: Recursive Descent Parser
// Description: Parser state, the statement loop, block handling and the
//              error recovery used by all productions.
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

	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger

	// SingleStatementBlocks limits every block to its first statement.
	// Further statements of the block are parsed as if they followed it.
	SingleStatementBlocks bool
}

// Parser implements recursive descent parsing with one token of
// lookahead. A Parser may be reused but must not be shared between
// goroutines.
type Parser struct {
	logger  *mdwlog.Logger
	options Options

	tokens []token.Token
	pos    int
	errs   *diag.List
}

// New creates a parser
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Parser{
		logger:  opts.Logger.WithField("component", "pylang-parser"),
		options: opts,
	}
}

// Parse builds the parse tree of tokens. Comments must already be removed.
// The returned tree is never nil; it holds every statement that parsed
// cleanly.
func (p *Parser) Parse(tokens []token.Token) (*ast.Node, *diag.List) {
	p.reset(tokens)
	timer := p.logger.StartTimer("parse")

	root := ast.New(ast.Program, "", ast.Position{Line: 1, Column: 1})
	root.Add(p.statements(false)...)

	timer.WithField("statements", len(root.Children)).
		WithField("errors", p.errs.Len()).
		Stop()
	return root, p.errs
}

// Parse parses tokens with default options and a silent logger
func Parse(tokens []token.Token) (*ast.Node, *diag.List) {
	return New(Options{Logger: mdwlog.NewDiscard()}).Parse(tokens)
}

func (p *Parser) reset(tokens []token.Token) {
	p.tokens = tokens
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		line, col := 1, 1
		if n > 0 {
			line, col = tokens[n-1].Line, tokens[n-1].Column+len(tokens[n-1].Lexeme)
		}
		p.tokens = append(append([]token.Token(nil), tokens...), token.New(token.EOF, "", line, col))
	}
	p.pos = 0
	p.errs = diag.NewSyntax()
}

// statements parses statements until EOF or, inside a block, until the
// DEDENT closing it.
func (p *Parser) statements(inBlock bool) []*ast.Node {
	var out []*ast.Node
	for {
		tok := p.current()
		switch tok.Kind {
		case token.EOF:
			return out
		case token.Newline:
			p.advance()
			continue
		case token.Dedent:
			p.advance()
			if inBlock {
				return out
			}
			continue
		case token.Indent:
			p.advance()
			if !p.options.SingleStatementBlocks {
				p.fail(tok, "Unexpected indentation")
				out = append(out, p.statements(true)...)
			}
			continue
		}

		start := p.pos
		if s := p.statement(); s != nil {
			out = append(out, s)
		}
		if p.pos == start {
			p.advance()
		}
	}
}

// block parses the indented body after a compound statement header.
// kind names the construct in the error message.
func (p *Parser) block(kind string) ([]*ast.Node, bool) {
	p.skipNewlines()
	if p.current().Kind != token.Indent {
		p.failf(p.current(), "Expected indented block after '%s'", kind)
		return nil, false
	}
	p.advance()

	if p.options.SingleStatementBlocks {
		s := p.statement()
		if s == nil {
			return nil, false
		}
		return []*ast.Node{s}, true
	}
	return p.statements(true), true
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

// advance returns the current token and moves past it. EOF is never
// passed.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) isDelimiter(d string) bool {
	return p.current().IsDelimiter(d)
}

func (p *Parser) matchDelimiter(d string) bool {
	if p.isDelimiter(d) {
		p.advance()
		return true
	}
	return false
}

// atLineEnd reports whether the current token ends a logical line
func (p *Parser) atLineEnd() bool {
	switch p.current().Kind {
	case token.Newline, token.EOF, token.Dedent:
		return true
	}
	return false
}

func (p *Parser) skipNewlines() {
	for p.current().Kind == token.Newline {
		p.advance()
	}
}

// syncLine skips to the NEWLINE ending the current line
func (p *Parser) syncLine() {
	for !p.atLineEnd() && p.current().Kind != token.Indent {
		p.advance()
	}
}

// abandon skips the rest of a failed compound header and the indented
// block following it, if any.
func (p *Parser) abandon() {
	p.syncLine()
	mark := p.pos
	p.skipNewlines()
	if p.current().Kind != token.Indent {
		p.pos = mark
		return
	}
	depth := 0
	for p.current().Kind != token.EOF {
		switch p.advance().Kind {
		case token.Indent:
			depth++
		case token.Dedent:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func (p *Parser) fail(at token.Token, message string) {
	p.errs.Add(at.Line, at.Column, message)
	p.logger.Debug("syntax error", mdwlog.Fields{
		"line":    at.Line,
		"column":  at.Column,
		"message": message,
	})
}

func (p *Parser) failf(at token.Token, format string, args ...interface{}) {
	p.fail(at, fmt.Sprintf(format, args...))
}

func position(tok token.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}
