// File: lexer.go
// Title: Source Tokenizer
// Description: Single left-to-right pass over the source that produces the
//              token stream, registers identifiers in the symbol table and
//              records lexical diagnostics. Indentation is tracked per
//              instance and reset on every run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package lexer

import (
	"strings"

	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// DefaultTabWidth is the number of columns a tab counts for in indentation
const DefaultTabWidth = 8

// eof is returned by the cursor helpers past the end of the source
const eof rune = 0

// Options configures a Lexer
type Options struct {
	Logger   *mdwlog.Logger
	TabWidth int
}

// Lexer converts source text into tokens. A Lexer may be reused for
// several runs but must not be shared between goroutines.
type Lexer struct {
	logger   *mdwlog.Logger
	tabWidth int

	src    []rune
	pos    int
	line   int
	column int

	tokens   []token.Token
	errs     *diag.List
	symbols  *symtab.Table
	indents  []int
	builtins map[string]bool
}

// New creates a lexer
func New(opts Options) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Lexer{
		logger:   logger.WithField("component", "pylang-lexer"),
		tabWidth: tabWidth,
	}
}

// TokenizeInput tokenizes src with a default lexer and a fresh symbol table
func TokenizeInput(src string) ([]token.Token, *diag.List, *symtab.Table) {
	symbols := symtab.New()
	tokens, errs := New(Options{Logger: mdwlog.NewDiscard()}).Tokenize(src, symbols)
	return tokens, errs, symbols
}

// Tokenize scans src and returns the tokens and the lexical diagnostics.
// Identifiers are registered in symbols. The token slice always ends with
// exactly one EOF token.
func (l *Lexer) Tokenize(src string, symbols *symtab.Table) ([]token.Token, *diag.List) {
	if symbols == nil {
		symbols = symtab.New()
	}
	l.reset(src, symbols)

	timer := l.logger.StartTimer("tokenize")
	l.handleIndentation()
	for l.pos < len(l.src) {
		l.next()
	}
	// input without a final newline still closes its blocks
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(token.Dedent, "", l.line, l.column)
	}
	l.emit(token.EOF, "", l.line, l.column)

	timer.WithField("tokens", len(l.tokens)).
		WithField("errors", l.errs.Len()).
		Stop()

	return l.tokens, l.errs
}

func (l *Lexer) reset(src string, symbols *symtab.Table) {
	l.src = []rune(src)
	l.pos = 0
	l.line = 1
	l.column = 1
	l.tokens = make([]token.Token, 0, len(l.src)/3+1)
	l.errs = diag.NewLexical()
	l.symbols = symbols
	l.indents = []int{0}
	l.builtins = make(map[string]bool)
}

// next dispatches on the class of the current character
func (l *Lexer) next() {
	c := l.current()
	switch {
	case c == '\n':
		l.emit(token.Newline, "\n", l.line, l.column)
		l.advance()
		l.handleIndentation()
	case c == ' ' || c == '\r' || c == '\t' || c == '\v' || c == '\f':
		l.advance()
	case c == '#':
		l.scanComment()
	case isDigit(c):
		l.scanNumber()
	case c == '"' || c == '\'':
		l.scanString(c)
	case isLetter(c) || c == '_':
		if !l.scanTypeAnnotation() {
			l.scanIdentifier()
		}
	case c == '@' || c == '$' || c == '`' || c == '\\':
		line, col := l.line, l.column
		bad := l.consumeBad()
		l.errs.Addf(line, col, "Invalid identifier at line %d column %d: '%s' (identifiers must start with a letter or underscore)", line, col, bad)
	case c == ':' && l.peek() == '=':
		l.errs.Add(l.line, l.column, "Invalid assignment operator: := (only '=' is allowed for variable assignments)")
		l.advance()
		l.advance()
	case isOperatorChar(c):
		l.scanOperator()
	case isDelimiter(c):
		l.emit(token.Delimiter, string(c), l.line, l.column)
		l.advance()
	default:
		line, col := l.line, l.column
		bad := l.consumeBad()
		l.errs.Addf(line, col, "Invalid character sequence at line %d column %d: '%s' (unknown or unsupported characters)", line, col, bad)
	}
}

// handleIndentation runs at the start of every line. Blank and
// comment-only lines leave the stack alone; the end of input counts as
// width zero.
func (l *Lexer) handleIndentation() {
	width := 0
	for l.current() == ' ' || l.current() == '\t' {
		if l.current() == '\t' {
			width += l.tabWidth
		} else {
			width++
		}
		l.advance()
	}

	switch c := l.current(); {
	case l.pos >= len(l.src):
		width = 0
	case c == '\n' || c == '#':
		return
	case c == '\r' && l.peek() == '\n':
		return
	}

	top := l.indents[len(l.indents)-1]
	if width > top {
		l.indents = append(l.indents, width)
		l.emit(token.Indent, "", l.line, l.column)
		return
	}
	if width < top {
		for len(l.indents) > 1 && width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(token.Dedent, "", l.line, l.column)
		}
		if width != l.indents[len(l.indents)-1] {
			l.errs.Add(l.line, l.column, "Inconsistent indentation level")
		}
	}
}

// Cursor helpers

func (l *Lexer) current() rune {
	if l.pos >= len(l.src) {
		return eof
	}
	return l.src[l.pos]
}

func (l *Lexer) peek() rune {
	return l.peekAt(1)
}

func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.src) {
		return eof
	}
	return l.src[l.pos+n]
}

func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

// mark and restore support speculative scans that never cross a newline
type mark struct{ pos, line, column int }

func (l *Lexer) mark() mark {
	return mark{l.pos, l.line, l.column}
}

func (l *Lexer) restore(m mark) {
	l.pos, l.line, l.column = m.pos, m.line, m.column
}

// text returns the source from start up to the cursor
func (l *Lexer) text(start int) string {
	return string(l.src[start:l.pos])
}

// consumeBad takes the current character and the alphanumeric run after it
func (l *Lexer) consumeBad() string {
	start := l.pos
	l.advance()
	l.skipRun()
	return l.text(start)
}

// skipRun advances over alphanumerics and underscores
func (l *Lexer) skipRun() {
	for isAlnum(l.current()) || l.current() == '_' {
		l.advance()
	}
}

func (l *Lexer) emit(kind token.Kind, lexeme string, line, column int) {
	l.tokens = append(l.tokens, token.New(kind, lexeme, line, column))
}

// Character classes. Only ASCII letters and digits form words.

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c rune) bool {
	return isLetter(c) || isDigit(c)
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOperatorChar(c rune) bool {
	return c != eof && strings.ContainsRune("+-*/%=&|<>!^~.", c)
}

func isDelimiter(c rune) bool {
	return c != eof && strings.ContainsRune(":,;()[]{}", c)
}
