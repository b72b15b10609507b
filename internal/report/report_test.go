package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/msto63/pyanalyzer/foundation/pylang"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
)

func analyze(t *testing.T, src string) *pylang.Result {
	t.Helper()
	analyzer, err := pylang.New(pylang.Options{Logger: mdwlog.NewDiscard()})
	if err != nil {
		t.Fatal(err)
	}
	result, err := analyzer.Run(src)
	if err != nil {
		t.Fatal(err)
	}
	return result
}

func TestWriteText_Clean(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, analyze(t, "x = 1\n"), Options{}); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"Tokens:",
		"[Line 1:1] 'x' (IDENTIFIER)",
		"[Line 1:3] '=' (EQUAL_OPERATOR)",
		"[Line 1:5] '1' (NUMBER)",
		`[Line 1:6] '\n' (NEWLINE)`,
		"[Line 2:1] '' (ENDOFFILE)",
		"",
		"Symbol Table:",
		"ID  Identifier  Type  Value",
		"1   x           int   1",
		"",
		"Parse Tree:",
		"Program",
		"└── Assignment: =",
		"    ├── Identifier: x",
		"    └── Number: 1",
		"",
		"No errors detected.",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("WriteText() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteText_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		section string
		line    string
		status  string
	}{
		{
			name:    "syntax",
			src:     "if x = 1:\n pass\n",
			section: "Syntax Errors:",
			line:    "Syntax Error: Invalid '=' in condition; did you mean '=='?",
			status:  pylang.StatusSyntaxErrors,
		},
		{
			name:    "lexical",
			src:     "x = 007\n",
			section: "Lexical Errors:",
			line:    "[Line 1:5] Lexical Error: Invalid number: 007",
			status:  pylang.StatusLexicalErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteText(&buf, analyze(t, tt.src), Options{}); err != nil {
				t.Fatal(err)
			}
			out := buf.String()
			for _, want := range []string{tt.section, tt.line, tt.status} {
				if !strings.Contains(out, want) {
					t.Errorf("output misses %q:\n%s", want, out)
				}
			}
			if strings.Contains(out, "Parse Tree:") {
				t.Errorf("output shows the tree:\n%s", out)
			}
		})
	}
}

func TestWriteText_Sections(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Sections: SectionStatus}
	if err := WriteText(&buf, analyze(t, "pass\n"), opts); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != pylang.StatusOK+"\n" {
		t.Errorf("WriteText(status only) = %q", got)
	}
}

func TestWriteSymbols_Alignment(t *testing.T) {
	var buf bytes.Buffer
	result := analyze(t, "counter = 10\nname = \"Ada\"\n")
	if err := WriteSymbols(&buf, result.Symbols.Entries()); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"ID  Identifier  Type    Value",
		"1   counter     int     10",
		"2   name        string  Ada",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteSymbols() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, analyze(t, "x = 1\n").Tree); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"digraph ParseTree {",
		`  node [shape=box, fontname="Helvetica"];`,
		`  n0 [label="Program"];`,
		`  n1 [label="Assignment: ="];`,
		`  n2 [label="Identifier: x"];`,
		"  n1 -> n2;",
		`  n3 [label="Number: 1"];`,
		"  n1 -> n3;",
		"  n0 -> n1;",
		"}",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("WriteDOT() =\n%s\nwant\n%s", got, want)
	}
}

func TestDotQuote(t *testing.T) {
	if got := dotQuote(`String: say "hi" \o/`); got != `"String: say \"hi\" \\o/"` {
		t.Errorf("dotQuote() = %s", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, analyze(t, "h = 0x1A\n")); err != nil {
		t.Fatal(err)
	}

	var doc struct {
		RunID         string                   `json:"run_id"`
		Status        string                   `json:"status"`
		Tokens        []TokenRow               `json:"tokens"`
		Symbols       []map[string]interface{} `json:"symbols"`
		LexicalErrors []interface{}            `json:"lexical_errors"`
		Tree          struct {
			Kind string `json:"kind"`
		} `json:"tree"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if doc.RunID == "" || doc.Status != pylang.StatusOK {
		t.Errorf("run_id = %q, status = %q", doc.RunID, doc.Status)
	}
	if len(doc.Tokens) != 5 {
		t.Fatalf("tokens = %d, want 5", len(doc.Tokens))
	}
	if hex := doc.Tokens[2]; hex.Kind != "HEXADDECIMAL_NUMBER" || hex.Name != "HEX_NUMBER" || hex.Column != 5 {
		t.Errorf("tokens[2] = %+v", hex)
	}
	if eof := doc.Tokens[4]; eof.Kind != "ENDOFFILE" || eof.Name != "EOF" {
		t.Errorf("tokens[4] = %+v", eof)
	}
	if len(doc.Symbols) != 1 || doc.Symbols[0]["data_type"] != "int" {
		t.Errorf("symbols = %v", doc.Symbols)
	}
	if doc.LexicalErrors == nil || len(doc.LexicalErrors) != 0 {
		t.Errorf("lexical_errors = %v, want empty list", doc.LexicalErrors)
	}
	if doc.Tree.Kind != "Program" {
		t.Errorf("tree.kind = %q, want Program", doc.Tree.Kind)
	}
}

func TestWriteYAML_OmitsHiddenTree(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, analyze(t, "while x\n    pass\n")); err != nil {
		t.Fatal(err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if doc["status"] != pylang.StatusSyntaxErrors {
		t.Errorf("status = %v", doc["status"])
	}
	if _, ok := doc["tree"]; ok {
		t.Error("tree exported although it is hidden")
	}
	errs, ok := doc["syntax_errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Fatalf("syntax_errors = %v", doc["syntax_errors"])
	}
	first := errs[0].(map[string]interface{})
	if first["code"] != string(mdwerror.CodeSyntax) || first["message"] != "Expected ':' after while condition" {
		t.Errorf("syntax_errors[0] = %v", first)
	}
}

func TestWrite_Formats(t *testing.T) {
	clean := analyze(t, "pass\n")
	broken := analyze(t, "x = 1 +\n")

	tests := []struct {
		name    string
		format  string
		result  *pylang.Result
		wantErr bool
		prefix  string
	}{
		{"default text", "", clean, false, "Tokens:"},
		{"json", "json", clean, false, "{"},
		{"yaml", "yaml", clean, false, "run_id:"},
		{"dot", "dot", clean, false, "digraph"},
		{"dot without tree", "dot", broken, true, ""},
		{"unknown", "xml", clean, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, tt.result, Options{})
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("Write() error = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("Write() = %q, want prefix %q", buf.String(), tt.prefix)
			}
		})
	}
}
