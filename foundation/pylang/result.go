// File: result.go
// Title: Analysis Results
// Description: The outputs of the analysis stages and the status line
//              derived from them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package pylang

import (
	"time"

	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// Status lines
const (
	StatusLexicalErrors = "Parse tree not displayed due to lexical errors."
	StatusSyntaxErrors  = "Parse tree not displayed due to syntax errors."
	StatusOK            = "No errors detected."
)

// Lexed is the output of lexing and constant folding
type Lexed struct {
	Tokens  []token.Token
	Errors  *diag.List
	Symbols *symtab.Table
}

// Parsed is the output of the parser
type Parsed struct {
	Tree   *ast.Node
	Errors *diag.List
}

// Result is a complete analysis run
type Result struct {
	RunID    string
	Source   string
	Started  time.Time
	Duration time.Duration

	Tokens        []token.Token
	Symbols       *symtab.Table
	LexicalErrors *diag.List
	SyntaxErrors  *diag.List

	// Tree is nil when parsing was skipped
	Tree *ast.Node
}

// Parsed reports whether the parser ran
func (r *Result) Parsed() bool {
	return r.Tree != nil
}

// TreeVisible reports whether the tree may be shown: it exists and no
// stage reported a problem.
func (r *Result) TreeVisible() bool {
	return r.Tree != nil && r.LexicalErrors.Empty() && r.SyntaxErrors.Empty()
}

// HasErrors reports whether any stage reported a problem
func (r *Result) HasErrors() bool {
	return !r.LexicalErrors.Empty() || !r.SyntaxErrors.Empty()
}

// ErrorCount returns the number of diagnostics of both stages
func (r *Result) ErrorCount() int {
	return r.LexicalErrors.Len() + r.SyntaxErrors.Len()
}

// Status returns the status line of the run
func (r *Result) Status() string {
	switch {
	case !r.LexicalErrors.Empty():
		return StatusLexicalErrors
	case !r.SyntaxErrors.Empty():
		return StatusSyntaxErrors
	default:
		return StatusOK
	}
}

// Diagnostics returns the lexical diagnostics followed by the syntax ones
func (r *Result) Diagnostics() []diag.Diagnostic {
	all := make([]diag.Diagnostic, 0, r.ErrorCount())
	all = append(all, r.LexicalErrors.Items()...)
	return append(all, r.SyntaxErrors.Items()...)
}
