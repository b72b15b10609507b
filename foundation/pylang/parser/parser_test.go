// File: parser_test.go
// Title: Parser Tests
// Description: Tests for every statement and expression production, the
//              syntax error messages and recovery, and single statement
//              blocks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package parser

import (
	"strings"
	"testing"

	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/lexer"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

func parseSource(t *testing.T, src string, opts Options) (*ast.Node, *diag.List) {
	t.Helper()
	tokens, lexErrs, _ := lexer.TokenizeInput(src)
	if !lexErrs.Empty() {
		t.Fatalf("lexical errors in %q: %v", src, lexErrs.Messages())
	}
	opts.Logger = mdwlog.NewDiscard()
	return New(opts).Parse(token.WithoutComments(tokens))
}

func TestParse_IfStatement(t *testing.T) {
	tree, errs := parseSource(t, "if x == 1:\n    pass\n", Options{})

	if !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Messages())
	}
	if len(tree.Children) != 1 {
		t.Fatalf("statements = %d, want 1", len(tree.Children))
	}
	want := "IfStmt(CompareOp[==](Identifier[x], Number[1]), PassStmt)"
	if got := tree.Children[0].String(); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func TestParse_Trees(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "x = 1 + 2 * 3\n",
			"Program(Assignment[=](Identifier[x], Operator[+](Number[1], Operator[*](Number[2], Number[3]))))"},
		{"left associative", "x = 8 - 3 - 2\n",
			"Program(Assignment[=](Identifier[x], Operator[-](Operator[-](Number[8], Number[3]), Number[2])))"},
		{"parentheses and hex", "x = (1 + 2) * 0x1F\n",
			"Program(Assignment[=](Identifier[x], Operator[*](Operator[+](Number[1], Number[2]), Hex[0x1F])))"},
		{"compound assignment", "x += 1\n",
			"Program(Assignment[+=](Identifier[x], Number[1]))"},
		{"unary minus and power", "x = -2 ** 2\n",
			"Program(Assignment[=](Identifier[x], UnaryOp[-](Operator[**](Number[2], Number[2]))))"},
		{"negative exponent", "x = 2 ** -1\n",
			"Program(Assignment[=](Identifier[x], Operator[**](Number[2], UnaryOp[-](Number[1]))))"},
		{"bool", "flag = True\n",
			"Program(Assignment[=](Identifier[flag], Bool[True]))"},
		{"chained comparison", "a < b < c\n",
			"Program(ExprStmt(CompareOp[<](CompareOp[<](Identifier[a], Identifier[b]), Identifier[c])))"},
		{"print without parentheses", "print x\n",
			"Program(FuncCall[print](Identifier[x]))"},
		{"print with arguments", "print(\"a\", 1)\n",
			"Program(FuncCall[print](String[a], Number[1]))"},
		{"call in expression", "y = len(s)\n",
			"Program(Assignment[=](Identifier[y], FuncCall[len](Identifier[s])))"},
		{"call without arguments", "name = input()\n",
			"Program(Assignment[=](Identifier[name], FuncCall[input]))"},
		{"for with two targets", "for i, j in pairs:\n    pass\n",
			"Program(ForStmt(TargetList(Identifier[i], Identifier[j]), Identifier[pairs], PassStmt))"},
		{"while with parentheses", "while (n > 0):\n    n -= 1\n",
			"Program(WhileStmt(CompareOp[>](Identifier[n], Number[0]), Assignment[-=](Identifier[n], Number[1])))"},
		{"function definition", "def add(a, b):\n    return a + b\n",
			"Program(FuncDef(Identifier[add], ParamList(Param[a], Param[b]), ReturnStmt(Operator[+](Identifier[a], Identifier[b]))))"},
		{"bare return", "def f():\n    return\n",
			"Program(FuncDef(Identifier[f], ReturnStmt))"},
		{"if chain with blocks", "if a:\n    x = 1\n    y = 2\nelif b:\n    pass\nelse:\n    break\n",
			"Program(IfStmt(Identifier[a], Assignment[=](Identifier[x], Number[1]), Assignment[=](Identifier[y], Number[2]), Elif(Identifier[b], PassStmt), Else(BreakStmt)))"},
		{"nested blocks", "while x:\n    if y:\n        continue\n    x = 0\n",
			"Program(WhileStmt(Identifier[x], IfStmt(Identifier[y], ContinueStmt), Assignment[=](Identifier[x], Number[0])))"},
		{"statements after block", "if a:\n    pass\nb = 1\n",
			"Program(IfStmt(Identifier[a], PassStmt), Assignment[=](Identifier[b], Number[1]))"},
		{"blank lines and comments", "# start\n\nx = 1 # one\n\n",
			"Program(Assignment[=](Identifier[x], Number[1]))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, errs := parseSource(t, tt.src, Options{})
			if !errs.Empty() {
				t.Fatalf("unexpected errors: %v", errs.Messages())
			}
			if got := tree.String(); got != tt.want {
				t.Errorf("tree =\n  %s\nwant\n  %s", got, tt.want)
			}
			if err := ast.Validate(tree); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"assignment in condition", "if x = 1:\n    pass\n", "Invalid '=' in condition; did you mean '=='?"},
		{"orphan elif", "elif x:\n    pass\n", "'elif' without matching 'if'"},
		{"orphan else", "else:\n    pass\n", "'else' without matching 'if'"},
		{"if without colon", "if x == 1\n    pass\n", "Expected ':' after if condition"},
		{"if without block", "if x:\npass\n", "Expected indented block after 'if'"},
		{"elif without colon", "if a:\n    pass\nelif b\n    pass\n", "Expected ':' after elif condition"},
		{"else without colon", "if a:\n    pass\nelse\n    pass\n", "Expected ':' after else"},
		{"for without identifier", "for 1 in x:\n    pass\n", "Expected identifier in for loop"},
		{"for without in", "for i x:\n    pass\n", "Expected 'in' in for loop"},
		{"for without colon", "for i in x\n    pass\n", "Expected ':' after for header"},
		{"while without close paren", "while (x < 1:\n    pass\n", "Expected ')' after while condition"},
		{"while without colon", "while x\n    pass\n", "Expected ':' after while condition"},
		{"while with assignment", "while x = 1:\n    pass\n", "Invalid '=' in condition; did you mean '=='?"},
		{"def without name", "def (a):\n    pass\n", "Expected function name after def"},
		{"def without parenthesis", "def f a:\n    pass\n", "Expected '(' after function name"},
		{"missing comma", "def f(a b):\n    pass\n", "Expected ',' between parameters"},
		{"unclosed parameters", "def f(a:\n    pass\n", "Expected ')' after parameters"},
		{"def without colon", "def f(a)\n    pass\n", "Expected ':' after def header"},
		{"def without block", "def f():\nreturn 1\n", "Expected indented block after 'def'"},
		{"print without argument", "print\n", "Expected an argument after print"},
		{"len without parentheses", "len x\n", "Expected '(' after 'len'"},
		{"unclosed print", "print(a\n", "Expected ')' after arguments"},
		{"unclosed call", "y = f(a\n", "Expected ')' after function call arguments"},
		{"unclosed group", "x = (1 + 2\n", "Expected ')' after expression"},
		{"dangling operator", "x = 1 +\n", "Expected an identifier, number, or expression"},
		{"missing operand", "x = * 2\n", "Expected an identifier, number, or expression"},
		{"trailing tokens", "x = 1 2\n", "Unexpected token '2' after statement"},
		{"unexpected indentation", "  x = 1\n", "Unexpected indentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := parseSource(t, tt.src, Options{})
			if errs.Len() != 1 {
				t.Fatalf("errors = %v, want [%s]", errs.Messages(), tt.want)
			}
			if got := errs.At(0).Message; got != tt.want {
				t.Errorf("message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, errs := parseSource(t, "x = 1\nif x = 1:\n    pass\n", Options{})
	if errs.Len() != 1 {
		t.Fatalf("errors = %v", errs.Messages())
	}
	if d := errs.At(0); d.Line != 2 || d.Column != 6 {
		t.Errorf("position = %d:%d, want 2:6", d.Line, d.Column)
	}
}

func TestParse_OrphanElifProducesNoNode(t *testing.T) {
	tree, errs := parseSource(t, "elif x:\n    pass\n", Options{})
	if errs.Len() != 1 {
		t.Errorf("errors = %v, want one", errs.Messages())
	}
	if len(tree.Children) != 0 {
		t.Errorf("tree = %s, want no statements", tree)
	}
}

func TestParse_RecoversAfterError(t *testing.T) {
	src := "if x = 1:\n    y = 2\nz = 3\n"
	tree, errs := parseSource(t, src, Options{})

	if errs.Len() != 1 {
		t.Errorf("errors = %v, want one", errs.Messages())
	}
	want := "Program(Assignment[=](Identifier[z], Number[3]))"
	if got := tree.String(); got != want {
		t.Errorf("tree = %s, want %s", got, want)
	}
}

func TestParse_SingleStatementBlocks(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"if a:\n    x = 1\n    y = 2\n",
			"Program(IfStmt(Identifier[a], Assignment[=](Identifier[x], Number[1])), Assignment[=](Identifier[y], Number[2]))"},
		{"if a:\n    pass\nelse:\n    pass\n",
			"Program(IfStmt(Identifier[a], PassStmt, Else(PassStmt)))"},
		{"  x = 1\n",
			"Program(Assignment[=](Identifier[x], Number[1]))"},
	}

	for _, tt := range tests {
		tree, errs := parseSource(t, tt.src, Options{SingleStatementBlocks: true})
		if !errs.Empty() {
			t.Errorf("%q: unexpected errors %v", tt.src, errs.Messages())
			continue
		}
		if got := tree.String(); got != tt.want {
			t.Errorf("%q: tree = %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestParse_WithoutEOF(t *testing.T) {
	tree, errs := Parse([]token.Token{token.New(token.Identifier, "x", 1, 1)})
	if !errs.Empty() {
		t.Errorf("unexpected errors: %v", errs.Messages())
	}
	if got := tree.String(); got != "Program(ExprStmt(Identifier[x]))" {
		t.Errorf("tree = %s", got)
	}

	tree, _ = Parse(nil)
	if tree == nil || len(tree.Children) != 0 {
		t.Errorf("Parse(nil) = %v, want empty program", tree)
	}
}

func TestParse_Terminates(t *testing.T) {
	inputs := []string{
		")\n",
		"] ] ]\n",
		"if\n",
		"for\n",
		"def\n",
		"while\n",
		"return )\n",
		"x = = =\n",
		"if a:\n    if b:\n        if c:\n",
	}

	for _, src := range inputs {
		tokens, _, _ := lexer.TokenizeInput(src)
		tree, errs := Parse(tokens)
		if tree == nil {
			t.Errorf("%q: nil tree", src)
		}
		if errs.Empty() {
			t.Errorf("%q: expected syntax errors", src)
		}
	}
}

func TestParser_Reuse(t *testing.T) {
	p := New(Options{Logger: mdwlog.NewDiscard()})

	bad, _, _ := lexer.TokenizeInput("x = (\n")
	if _, errs := p.Parse(bad); errs.Empty() {
		t.Fatal("first parse should fail")
	}

	good, _, _ := lexer.TokenizeInput("x = 1\n")
	tree, errs := p.Parse(good)
	if !errs.Empty() {
		t.Errorf("errors leaked between runs: %v", errs.Messages())
	}
	if !strings.HasPrefix(tree.String(), "Program(Assignment") {
		t.Errorf("tree = %s", tree)
	}
}
