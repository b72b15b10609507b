// File: walk.go
// Title: Parse Tree Traversal and Validation
// Description: Depth-first traversal helpers and the structural rules
//              each node kind must satisfy.
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

	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// Visitor is called for every node by Walk. If Visit returns a non-nil
// visitor w, Walk visits the children of n with w and finally calls
// w.Visit(nil).
type Visitor interface {
	Visit(n *Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order
func Walk(v Visitor, n *Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	for _, c := range n.Children {
		Walk(v, c)
	}
	v.Visit(nil)
}

type inspector func(*Node) bool

func (f inspector) Visit(n *Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls f for every node in depth-first order. Children of a node
// are skipped when f returns false for it. f is also called with nil
// after the children of a node have been visited.
func Inspect(n *Node, f func(*Node) bool) {
	Walk(inspector(f), n)
}

// Collect returns all nodes of the given kinds in depth-first order
func Collect(n *Node, kinds ...Kind) []*Node {
	var found []*Node
	Inspect(n, func(c *Node) bool {
		if c == nil {
			return false
		}
		for _, k := range kinds {
			if c.Kind == k {
				found = append(found, c)
				break
			}
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the tree
func Count(n *Node) int {
	count := 0
	Inspect(n, func(c *Node) bool {
		if c != nil {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of levels of the tree, 0 for nil
func Depth(n *Node) int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Validate checks the structural rules of every node in the tree
func Validate(n *Node) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if err := n.validate(); err != nil {
		return fmt.Errorf("%s at line %d, column %d: %w", n.Kind, n.Pos.Line, n.Pos.Column, err)
	}
	for _, c := range n.Children {
		if err := Validate(c); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) validate() error {
	switch n.Kind {
	case Program:
		return n.requireStatements(0)
	case IfStmt, WhileStmt:
		if err := n.requireExpression(0); err != nil {
			return err
		}
		return n.requireStatements(1)
	case Elif:
		if err := n.requireExpression(0); err != nil {
			return err
		}
		return n.requireStatements(1)
	case Else:
		if len(n.Children) == 0 {
			return fmt.Errorf("empty body")
		}
		return n.requireStatements(0)
	case ForStmt:
		if n.Child(0) == nil || n.Child(0).Kind != TargetList {
			return fmt.Errorf("missing target list")
		}
		if err := n.requireExpression(1); err != nil {
			return err
		}
		return n.requireStatements(2)
	case TargetList:
		return n.requireChildren(Identifier)
	case ParamList:
		return n.requireChildren(Param)
	case FuncDef:
		name := n.Child(0)
		if name == nil || name.Kind != Identifier {
			return fmt.Errorf("missing function name")
		}
		body := 1
		if p := n.Child(1); p != nil && p.Kind == ParamList {
			body = 2
		}
		return n.requireStatements(body)
	case ReturnStmt:
		if len(n.Children) > 1 {
			return fmt.Errorf("more than one return value")
		}
		if len(n.Children) == 1 {
			return n.requireExpression(0)
		}
	case Assignment:
		if n.Child(0) == nil || n.Child(0).Kind != Identifier {
			return fmt.Errorf("assignment target is not an identifier")
		}
		if len(n.Children) != 2 {
			return fmt.Errorf("assignment needs exactly one value")
		}
		return n.requireExpression(1)
	case ExprStmt:
		if len(n.Children) != 1 {
			return fmt.Errorf("expression statement needs exactly one expression")
		}
		return n.requireExpression(0)
	case CompareOp, Operator:
		if len(n.Children) != 2 {
			return fmt.Errorf("binary operator %q needs two operands", n.Value)
		}
		if err := n.requireExpression(0); err != nil {
			return err
		}
		return n.requireExpression(1)
	case UnaryOp:
		if len(n.Children) != 1 {
			return fmt.Errorf("unary operator %q needs one operand", n.Value)
		}
		return n.requireExpression(0)
	case FuncCall:
		if mdwstringx.IsBlank(n.Value) {
			return fmt.Errorf("call without function name")
		}
		for i := range n.Children {
			if err := n.requireExpression(i); err != nil {
				return err
			}
		}
	case Identifier, Param, Number, Hex, Binary, Octal, Bool:
		if mdwstringx.IsBlank(n.Value) {
			return fmt.Errorf("missing value")
		}
		if len(n.Children) != 0 {
			return fmt.Errorf("leaf node has children")
		}
	case String, PassStmt, BreakStmt, ContinueStmt:
		if len(n.Children) != 0 {
			return fmt.Errorf("leaf node has children")
		}
	default:
		return fmt.Errorf("unknown node kind %d", int(n.Kind))
	}
	return nil
}

func (n *Node) requireExpression(i int) error {
	c := n.Child(i)
	if c == nil {
		return fmt.Errorf("missing expression")
	}
	if !c.IsExpression() {
		return fmt.Errorf("%s is not an expression", c.Kind)
	}
	return nil
}

// requireStatements checks that the children from index from on are
// statements; Elif and Else are accepted as trailing IfStmt clauses.
func (n *Node) requireStatements(from int) error {
	for _, c := range n.Children[min(from, len(n.Children)):] {
		if c.Kind.IsStatement() {
			continue
		}
		if n.Kind == IfStmt && (c.Kind == Elif || c.Kind == Else) {
			continue
		}
		return fmt.Errorf("%s is not a statement", c.Kind)
	}
	return nil
}

func (n *Node) requireChildren(kind Kind) error {
	if len(n.Children) == 0 {
		return fmt.Errorf("empty %s", n.Kind)
	}
	for _, c := range n.Children {
		if c.Kind != kind {
			return fmt.Errorf("%s in %s", c.Kind, n.Kind)
		}
	}
	return nil
}

// IsExpression reports whether the node can appear as an operand
func (n *Node) IsExpression() bool {
	switch n.Kind {
	case CompareOp, Operator, UnaryOp, Identifier, FuncCall:
		return true
	}
	return n.Kind.IsLiteral()
}
