// File: diag.go
// Title: Analysis Diagnostics
// Description: Defines the diagnostics reported by the lexer, the constant
//              folder and the parser, and the append-only lists that
//              collect them. Diagnostics never abort an analysis.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package diag collects lexical and syntax diagnostics.
package diag

import (
	"fmt"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

// Diagnostic is a single problem found in the analyzed source
type Diagnostic struct {
	Code    mdwerror.Code `json:"code" yaml:"code"`
	Message string        `json:"message" yaml:"message"`
	Line    int           `json:"line" yaml:"line"`
	Column  int           `json:"column" yaml:"column"`
}

// Label returns "Syntax Error" for syntax diagnostics and "Lexical Error"
// for everything reported before parsing, folding errors included.
func (d Diagnostic) Label() string {
	if d.Code == mdwerror.CodeSyntax {
		return "Syntax Error"
	}
	return "Lexical Error"
}

// String renders the diagnostic in listing form: [Line L:C] Lexical Error: msg
func (d Diagnostic) String() string {
	return fmt.Sprintf("[Line %d:%d] %s: %s", d.Line, d.Column, d.Label(), d.Message)
}

// Err converts the diagnostic into a coded error
func (d Diagnostic) Err() *mdwerror.Error {
	return mdwerror.New(d.Message).
		WithCode(d.Code).
		WithDetail("line", d.Line).
		WithDetail("column", d.Column)
}

// List is an append-only, detection-ordered list of diagnostics sharing
// one default code. A nil *List behaves as an empty list.
type List struct {
	code  mdwerror.Code
	items []Diagnostic
}

// NewList creates an empty list whose entries default to code
func NewList(code mdwerror.Code) *List {
	return &List{code: code}
}

// NewLexical creates an empty list for lexical diagnostics
func NewLexical() *List {
	return NewList(mdwerror.CodeLexical)
}

// NewSyntax creates an empty list for syntax diagnostics
func NewSyntax() *List {
	return NewList(mdwerror.CodeSyntax)
}

// Code returns the default code of the list
func (l *List) Code() mdwerror.Code {
	if l == nil {
		return mdwerror.CodeUnknown
	}
	return l.code
}

// Add appends a diagnostic with the list's default code
func (l *List) Add(line, column int, message string) {
	l.AddCode(l.code, line, column, message)
}

// Addf appends a formatted diagnostic with the list's default code
func (l *List) Addf(line, column int, format string, args ...interface{}) {
	l.AddCode(l.code, line, column, fmt.Sprintf(format, args...))
}

// AddCode appends a diagnostic with an explicit code
func (l *List) AddCode(code mdwerror.Code, line, column int, message string) {
	l.items = append(l.items, Diagnostic{
		Code:    code,
		Message: message,
		Line:    line,
		Column:  column,
	})
}

// Len returns the number of diagnostics
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Empty reports whether the list holds no diagnostics
func (l *List) Empty() bool {
	return l.Len() == 0
}

// Items returns a copy of the diagnostics in detection order
func (l *List) Items() []Diagnostic {
	if l == nil {
		return nil
	}
	return append([]Diagnostic(nil), l.items...)
}

// At returns the i-th diagnostic
func (l *List) At(i int) Diagnostic {
	return l.items[i]
}

// OnLines reports whether any diagnostic lies on a line in [from, to]
func (l *List) OnLines(from, to int) bool {
	if l == nil {
		return false
	}
	for _, d := range l.items {
		if d.Line >= from && d.Line <= to {
			return true
		}
	}
	return false
}

// Messages returns the bare messages in detection order
func (l *List) Messages() []string {
	if l == nil {
		return nil
	}
	messages := make([]string, len(l.items))
	for i, d := range l.items {
		messages[i] = d.Message
	}
	return messages
}

// Err returns nil for an empty list, otherwise a coded error that names
// the first diagnostic and carries the total count.
func (l *List) Err() error {
	if l.Empty() {
		return nil
	}
	first := l.items[0]
	return mdwerror.New(fmt.Sprintf("%d %s(s), first: %s", len(l.items), first.Label(), first.String())).
		WithCode(l.code).
		WithDetail("count", len(l.items)).
		WithDetail("line", first.Line).
		WithDetail("column", first.Column)
}
