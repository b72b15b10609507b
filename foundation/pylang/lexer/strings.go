// File: strings.go
// Title: String and Comment Scanner
// Description: Scans quoted and triple-quoted string literals, line
//              comments and docstring comments introduced by '#'.
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

	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// validEscapes are the characters accepted after a backslash that
// directly follows the opening quote
const validEscapes = "nt\\\"'"

// scanString scans a literal delimited by quote. The lexeme is the raw
// content between the quotes; escapes are kept as written.
func (l *Lexer) scanString(quote rune) {
	line, col := l.line, l.column
	l.advance()

	triple := false
	if l.current() == quote && l.peek() == quote {
		triple = true
		l.advance()
		l.advance()
	}

	if l.current() == '\\' && !strings.ContainsRune(validEscapes, l.peek()) {
		esc := l.peek()
		if esc == eof || esc == '\n' {
			l.errs.Add(l.line, l.column, "Invalid escape sequence: \\")
		} else {
			l.errs.Addf(l.line, l.column, "Invalid escape sequence: \\%c", esc)
		}
	}

	if triple {
		l.scanTripleString(quote, line, col)
		return
	}

	var sb strings.Builder
	for l.current() != quote {
		c := l.current()
		if c == eof || c == '\n' {
			// the newline stays for the main loop
			l.errs.Addf(line, col, "Unterminated string literal starting at line %d column %d", line, col)
			return
		}
		sb.WriteRune(c)
		l.advance()
		if c == '\\' && l.current() != eof && l.current() != '\n' {
			sb.WriteRune(l.current())
			l.advance()
		}
	}
	l.advance()
	l.emit(token.String, sb.String(), line, col)
}

func (l *Lexer) scanTripleString(quote rune, line, col int) {
	content, ok := l.readUntilTriple(quote)
	if !ok {
		l.errs.Addf(line, col, "Unterminated triple-quoted string starting at line %d column %d", line, col)
		return
	}
	l.emit(token.String, content, line, col)
}

// readUntilTriple consumes up to and including three consecutive quote
// characters and returns the text before them. It reports false at the
// end of input.
func (l *Lexer) readUntilTriple(quote rune) (string, bool) {
	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return sb.String(), false
		}
		if l.current() == quote && l.peek() == quote && l.peekAt(2) == quote {
			l.advance()
			l.advance()
			l.advance()
			return sb.String(), true
		}
		sb.WriteRune(l.current())
		l.advance()
	}
}

// scanComment scans a '#' comment. '#' directly followed by a triple
// quote opens a docstring comment that may span lines.
func (l *Lexer) scanComment() {
	line, col := l.line, l.column
	l.advance()

	if q := l.current(); (q == '"' || q == '\'') && l.peek() == q && l.peekAt(2) == q {
		l.advance()
		l.advance()
		l.advance()
		content, ok := l.readUntilTriple(q)
		if !ok {
			l.errs.Add(line, col, "Unterminated multi-line comment (docstring)")
			return
		}
		l.emit(token.Comment, content, line, col)
		return
	}

	start := l.pos
	for l.pos < len(l.src) && l.current() != '\n' {
		l.advance()
	}
	l.emit(token.Comment, l.text(start), line, col)
}
