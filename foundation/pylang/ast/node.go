// File: node.go
// Title: Parse Tree Nodes
// Description: Node kinds, the uniform tree node and its compact string
//              form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"strings"

	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// Kind identifies the grammar construct a node represents
type Kind int

const (
	Program Kind = iota
	IfStmt
	Elif
	Else
	ForStmt
	TargetList
	WhileStmt
	FuncDef
	ParamList
	Param
	ReturnStmt
	PassStmt
	BreakStmt
	ContinueStmt
	FuncCall
	Assignment
	ExprStmt
	CompareOp
	Operator
	UnaryOp
	Identifier
	String
	Bool
	Number
	Hex
	Binary
	Octal
)

var kindNames = [...]string{
	Program:      "Program",
	IfStmt:       "IfStmt",
	Elif:         "Elif",
	Else:         "Else",
	ForStmt:      "ForStmt",
	TargetList:   "TargetList",
	WhileStmt:    "WhileStmt",
	FuncDef:      "FuncDef",
	ParamList:    "ParamList",
	Param:        "Param",
	ReturnStmt:   "ReturnStmt",
	PassStmt:     "PassStmt",
	BreakStmt:    "BreakStmt",
	ContinueStmt: "ContinueStmt",
	FuncCall:     "FuncCall",
	Assignment:   "Assignment",
	ExprStmt:     "ExprStmt",
	CompareOp:    "CompareOp",
	Operator:     "Operator",
	UnaryOp:      "UnaryOp",
	Identifier:   "Identifier",
	String:       "String",
	Bool:         "Bool",
	Number:       "Number",
	Hex:          "Hex",
	Binary:       "Binary",
	Octal:        "Octal",
}

// String returns the display name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind with the given display name
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown node kind: %s", name)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsStatement reports whether k is a statement kind
func (k Kind) IsStatement() bool {
	switch k {
	case IfStmt, ForStmt, WhileStmt, FuncDef, ReturnStmt, PassStmt,
		BreakStmt, ContinueStmt, FuncCall, Assignment, ExprStmt:
		return true
	}
	return false
}

// IsLiteral reports whether k is a leaf literal kind
func (k Kind) IsLiteral() bool {
	switch k {
	case String, Bool, Number, Hex, Binary, Octal:
		return true
	}
	return false
}

// Position is the source position of the token a node was built from
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Node is a parse tree node
type Node struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Pos      Position `json:"pos" yaml:"pos"`
	Children []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// New creates a node; nil children are dropped
func New(kind Kind, value string, pos Position, children ...*Node) *Node {
	n := &Node{Kind: kind, Value: value, Pos: pos}
	n.Add(children...)
	return n
}

// Add appends children, skipping nil ones
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Child returns the i-th child or nil
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Label returns "Kind: value", or just the kind for nodes without a
// value. Control characters in the value are escaped.
func (n *Node) Label() string {
	if n.Value == "" {
		return n.Kind.String()
	}
	return n.Kind.String() + ": " + mdwstringx.EscapeControl(n.Value)
}

// String returns the compact form Kind[value](child, ...)
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.writeCompact(&b)
	return b.String()
}

func (n *Node) writeCompact(b *strings.Builder) {
	b.WriteString(n.Kind.String())
	if n.Value != "" {
		b.WriteByte('[')
		b.WriteString(n.Value)
		b.WriteByte(']')
	}
	if len(n.Children) == 0 {
		return
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		c.writeCompact(b)
	}
	b.WriteByte(')')
}
