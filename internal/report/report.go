// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     report
// Description: Ausgabe von Analyseergebnissen als Text, JSON, YAML und DOT
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package report renders analysis results for the command line.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
	"github.com/msto63/pyanalyzer/internal/settings"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// Section selects the parts of a text report
type Section uint8

const (
	SectionTokens Section = 1 << iota
	SectionDiagnostics
	SectionSymbols
	SectionTree
	SectionStatus

	SectionAll = SectionTokens | SectionDiagnostics | SectionSymbols | SectionTree | SectionStatus
)

// Options configures a text report
type Options struct {
	Sections Section
	Color    bool
}

// Write renders r in the given output format
func Write(w io.Writer, format string, r *pylang.Result, opts Options) error {
	switch format {
	case settings.FormatText, "":
		return WriteText(w, r, opts)
	case settings.FormatJSON:
		return WriteJSON(w, r)
	case settings.FormatYAML:
		return WriteYAML(w, r)
	case settings.FormatDOT:
		if !r.TreeVisible() {
			return mdwerror.New(r.Status()).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("report.Write")
		}
		return WriteDOT(w, r.Tree)
	default:
		return mdwerror.Newf("unknown output format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithDetail("formats", settings.Formats).
			WithOperation("report.Write")
	}
}

// WriteText writes the human-readable report. The parse tree is shown
// only when no stage reported a problem.
func WriteText(w io.Writer, r *pylang.Result, opts Options) error {
	if opts.Sections == 0 {
		opts.Sections = SectionAll
	}
	p := newPainter(opts.Color)
	ew := &errWriter{w: w}

	if opts.Sections&SectionTokens != 0 {
		ew.println(p.heading("Tokens:"))
		WriteTokens(ew, r.Tokens)
		ew.println("")
	}

	if opts.Sections&SectionDiagnostics != 0 {
		writeDiagnostics(ew, p, "Lexical Errors:", r.LexicalErrors)
		writeDiagnostics(ew, p, "Syntax Errors:", r.SyntaxErrors)
	}

	if opts.Sections&SectionSymbols != 0 {
		ew.println(p.heading("Symbol Table:"))
		WriteSymbols(ew, r.Symbols.Entries())
		ew.println("")
	}

	if opts.Sections&SectionTree != 0 && r.TreeVisible() {
		ew.println(p.heading("Parse Tree:"))
		ew.print(ast.Render(r.Tree))
		ew.println("")
	}

	if opts.Sections&SectionStatus != 0 {
		if r.HasErrors() {
			ew.println(p.fail(r.Status()))
		} else {
			ew.println(p.ok(r.Status()))
		}
	}
	return ew.err
}

// WriteTokens writes one "[Line L:C] 'lexeme' (KIND)" line per token.
// Control characters in lexemes are escaped.
func WriteTokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "[Line %d:%d] '%s' (%s)\n",
			tok.Line, tok.Column, mdwstringx.EscapeControl(tok.Lexeme), tok.Kind); err != nil {
			return err
		}
	}
	return nil
}

// WriteSymbols writes the symbol table as aligned columns
func WriteSymbols(w io.Writer, entries []symtab.Entry) error {
	rows := [][]string{{"ID", "Identifier", "Type", "Value"}}
	for _, e := range entries {
		rows = append(rows, []string{strconv.Itoa(e.ID), e.Name, e.DataType, mdwstringx.EscapeControl(e.Value)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if cw := mdwstringx.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, row := range rows {
		line := ""
		for i, cell := range row {
			if i == len(row)-1 {
				line += cell
				break
			}
			line += mdwstringx.PadRight(cell, widths[i]) + "  "
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagnostics(w *errWriter, p painter, title string, list *diag.List) {
	if list.Empty() {
		return
	}
	w.println(p.heading(title))
	for _, d := range list.Items() {
		w.println(p.fail(d.String()))
	}
	w.println("")
}

// errWriter keeps the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}

func (e *errWriter) print(s string) {
	_, _ = io.WriteString(e, s)
}

func (e *errWriter) println(s string) {
	e.print(s + "\n")
}
