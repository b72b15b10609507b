// File: ast_test.go
// Title: Parse Tree Tests
// Description: Tests for node kinds, compact and indented rendering,
//              traversal and structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func pos(line, col int) Position {
	return Position{Line: line, Column: col}
}

// if x == 1:
//     pass
func sampleIf() *Node {
	cond := New(CompareOp, "==", pos(1, 6),
		New(Identifier, "x", pos(1, 4)),
		New(Number, "1", pos(1, 9)))
	return New(IfStmt, "", pos(1, 1), cond, New(PassStmt, "", pos(2, 5)))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Program, "Program"},
		{IfStmt, "IfStmt"},
		{TargetList, "TargetList"},
		{ContinueStmt, "ContinueStmt"},
		{CompareOp, "CompareOp"},
		{Octal, "Octal"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for k := Program; k <= Octal; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("Lambda"); err == nil {
		t.Error("ParseKind(Lambda) should fail")
	}
}

func TestNode_String(t *testing.T) {
	want := "IfStmt(CompareOp[==](Identifier[x], Number[1]), PassStmt)"
	if got := sampleIf().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var nilNode *Node
	if got := nilNode.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
}

func TestNew_DropsNilChildren(t *testing.T) {
	n := New(ReturnStmt, "", pos(1, 1), nil)
	if len(n.Children) != 0 {
		t.Errorf("children = %d, want 0", len(n.Children))
	}
}

func TestRender(t *testing.T) {
	root := New(Program, "", pos(1, 1), sampleIf(),
		New(Assignment, "=", pos(3, 3),
			New(Identifier, "s", pos(3, 1)),
			New(String, "a\tb", pos(3, 5))))

	want := strings.Join([]string{
		"Program",
		"├── IfStmt",
		"│   ├── CompareOp: ==",
		"│   │   ├── Identifier: x",
		"│   │   └── Number: 1",
		"│   └── PassStmt",
		"└── Assignment: =",
		"    ├── Identifier: s",
		`    └── String: a\tb`,
		"",
	}, "\n")

	if got := Render(root); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestCollectAndCount(t *testing.T) {
	root := New(Program, "", pos(1, 1), sampleIf(), sampleIf())

	if got := Count(root); got != 11 {
		t.Errorf("Count() = %d, want 11", got)
	}
	if got := len(Collect(root, Identifier, Number)); got != 4 {
		t.Errorf("Collect(Identifier, Number) = %d nodes, want 4", got)
	}
	if got := Depth(root); got != 4 {
		t.Errorf("Depth() = %d, want 4", got)
	}
}

func TestInspect_SkipsChildren(t *testing.T) {
	var seen []string
	Inspect(sampleIf(), func(n *Node) bool {
		if n == nil {
			return false
		}
		seen = append(seen, n.Kind.String())
		return n.Kind != CompareOp
	})

	want := "IfStmt CompareOp PassStmt"
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("visited %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		wantErr bool
	}{
		{"valid if", sampleIf(), false},
		{"statement as condition", New(IfStmt, "", pos(1, 1), New(PassStmt, "", pos(1, 4))), true},
		{"operator with one operand", New(Operator, "+", pos(1, 1), New(Number, "1", pos(1, 1))), true},
		{"assignment to literal", New(Assignment, "=", pos(1, 1),
			New(Number, "1", pos(1, 1)), New(Number, "2", pos(1, 5))), true},
		{"empty identifier", New(Identifier, "", pos(1, 1)), true},
		{"for without targets", New(ForStmt, "", pos(1, 1),
			New(Identifier, "i", pos(1, 5)), New(Identifier, "xs", pos(1, 10))), true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNode_JSON(t *testing.T) {
	data, err := json.Marshal(New(Number, "0x1A", pos(2, 3)))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"Number","value":"0x1A","pos":{"line":2,"column":3}}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}

	var back Node
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != Number {
		t.Errorf("Kind = %v, want Number", back.Kind)
	}
}
