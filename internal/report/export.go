package report

import (
	"encoding/json"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
)

// TokenRow is the exported form of a token. Kind is the display name,
// Name the unambiguous identifier of the kind.
type TokenRow struct {
	Lexeme string `json:"lexeme" yaml:"lexeme"`
	Kind   string `json:"kind" yaml:"kind"`
	Name   string `json:"name" yaml:"name"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Document is the structured export of an analysis run
type Document struct {
	RunID         string            `json:"run_id" yaml:"run_id"`
	Source        string            `json:"source,omitempty" yaml:"source,omitempty"`
	Started       time.Time         `json:"started" yaml:"started"`
	DurationMS    float64           `json:"duration_ms" yaml:"duration_ms"`
	Status        string            `json:"status" yaml:"status"`
	Tokens        []TokenRow        `json:"tokens" yaml:"tokens"`
	Symbols       []symtab.Entry    `json:"symbols" yaml:"symbols"`
	LexicalErrors []diag.Diagnostic `json:"lexical_errors" yaml:"lexical_errors"`
	SyntaxErrors  []diag.Diagnostic `json:"syntax_errors" yaml:"syntax_errors"`
	Tree          *ast.Node         `json:"tree,omitempty" yaml:"tree,omitempty"`
}

// NewDocument builds the export document of r. The tree is included only
// when it may be shown.
func NewDocument(r *pylang.Result) *Document {
	doc := &Document{
		RunID:         r.RunID,
		Source:        r.Source,
		Started:       r.Started,
		DurationMS:    float64(r.Duration.Microseconds()) / 1000,
		Status:        r.Status(),
		Tokens:        make([]TokenRow, 0, len(r.Tokens)),
		Symbols:       r.Symbols.Entries(),
		LexicalErrors: nonNil(r.LexicalErrors.Items()),
		SyntaxErrors:  nonNil(r.SyntaxErrors.Items()),
	}
	for _, tok := range r.Tokens {
		doc.Tokens = append(doc.Tokens, TokenRow{
			Lexeme: tok.Lexeme,
			Kind:   tok.Kind.String(),
			Name:   tok.Kind.Name(),
			Line:   tok.Line,
			Column: tok.Column,
		})
	}
	if doc.Symbols == nil {
		doc.Symbols = []symtab.Entry{}
	}
	if r.TreeVisible() {
		doc.Tree = r.Tree
	}
	return doc
}

func nonNil(items []diag.Diagnostic) []diag.Diagnostic {
	if items == nil {
		return []diag.Diagnostic{}
	}
	return items
}

// WriteJSON writes the export document as indented JSON
func WriteJSON(w io.Writer, r *pylang.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r))
}

// WriteYAML writes the export document as YAML
func WriteYAML(w io.Writer, r *pylang.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return err
	}
	return enc.Close()
}
