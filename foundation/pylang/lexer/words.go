// File: words.go
// Title: Identifier, Keyword and Operator Scanner
// Description: Scans identifiers and keywords, the "TypeWord name"
//              annotation form, and operators. Identifiers are registered
//              in the symbol table as they are seen.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package lexer

import (
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// scanIdentifier scans a word starting at a letter or underscore
func (l *Lexer) scanIdentifier() {
	start, line, col := l.pos, l.line, l.column

	if l.current() == '_' && isDigit(l.peek()) {
		l.advance()
		l.skipRun()
		l.errs.Addf(line, col, "Invalid identifier starts with underscore followed by digit: %s", l.text(start))
		return
	}

	l.skipRun()
	word := l.text(start)

	switch {
	case token.IsKeyword(word):
		l.emit(token.Keyword, word, line, col)
	case token.IsBuiltinFunction(word):
		l.emit(token.Identifier, word, line, col)
		if !l.builtins[word] {
			l.builtins[word] = true
			l.symbols.AddAt(word, line)
			l.symbols.SetInfo(word, symtab.TypeFunction, symtab.ValueBuiltin)
		}
	default:
		if !l.followedByCall() {
			l.symbols.AddAt(word, line)
		}
		l.emit(token.Identifier, word, line, col)
	}
}

// followedByCall reports whether the next non-blank character on the
// current line is '('. The cursor does not move.
func (l *Lexer) followedByCall() bool {
	for i := l.pos; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\r', '\v', '\f':
			continue
		case '(':
			return true
		default:
			return false
		}
	}
	return false
}

// scanTypeAnnotation recognizes "int x" and similar. On success the type
// word is dropped and only the name is emitted; otherwise the cursor is
// rolled back and false is returned.
func (l *Lexer) scanTypeAnnotation() bool {
	m := l.mark()

	start := l.pos
	l.skipRun()
	if !token.IsTypeWord(l.text(start)) {
		l.restore(m)
		return false
	}

	for c := l.current(); c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'; c = l.current() {
		l.advance()
	}

	line, col := l.line, l.column
	if !isLetter(l.current()) && !(l.current() == '_' && !isDigit(l.peek())) {
		l.restore(m)
		return false
	}
	nameStart := l.pos
	l.skipRun()
	name := l.text(nameStart)
	if token.IsKeyword(name) {
		l.restore(m)
		return false
	}

	l.symbols.AddAt(name, line)
	l.emit(token.Identifier, name, line, col)
	return true
}

// scanOperator scans an operator with greedy longest match
func (l *Lexer) scanOperator() {
	line, col := l.line, l.column
	c, next := l.current(), l.peek()

	two := func(kind token.Kind) {
		l.emit(kind, string([]rune{c, next}), line, col)
		l.advance()
		l.advance()
	}
	one := func(kind token.Kind) {
		l.emit(kind, string(c), line, col)
		l.advance()
	}

	switch c {
	case '=':
		if next == '=' {
			two(token.Compare)
		} else {
			one(token.Equal)
		}
	case '!':
		if next == '=' {
			two(token.Compare)
		} else {
			one(token.NotAssign)
		}
	case '<', '>':
		switch next {
		case '=':
			two(token.Compare)
		case c:
			two(token.Operator)
		default:
			one(token.Compare)
		}
	case '+':
		if next == '=' {
			two(token.AddAssign)
		} else {
			one(token.Add)
		}
	case '-':
		if next == '=' {
			two(token.SubAssign)
		} else {
			one(token.Minus)
		}
	case '*':
		switch next {
		case '=':
			two(token.MultiplyAssign)
		case '*':
			two(token.Power)
		default:
			one(token.Multiply)
		}
	case '/', '%':
		if next == '=' {
			l.errs.Addf(line, col, "Invalid assignment operator: %c= (only '=' is allowed for variable assignments)", c)
			l.advance()
			l.advance()
			return
		}
		if c == '/' {
			one(token.Divide)
		} else {
			one(token.Percentage)
		}
	case '&':
		one(token.BitAnd)
	case '|':
		one(token.BitOr)
	case '^':
		one(token.Power)
	case '.':
		one(token.Operator)
	default:
		l.errs.Addf(line, col, "Unexpected operator: %c", c)
		l.advance()
	}
}
