// File: render.go
// Title: Parse Tree Text Rendering
// Description: Indented "Kind: value" listing of a parse tree with box
//              drawing connectors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ast

import (
	"io"
	"strings"
)

const (
	branch = "├── "
	last   = "└── "
	pipe   = "│   "
	blank  = "    "
)

// Render returns the indented listing of the tree, one node per line.
// Values are shown with control characters escaped.
func Render(n *Node) string {
	var b strings.Builder
	_ = Fprint(&b, n)
	return b.String()
}

// Fprint writes the indented listing of the tree to w
func Fprint(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	if _, err := io.WriteString(w, n.Label()+"\n"); err != nil {
		return err
	}
	return fprintChildren(w, n, "")
}

func fprintChildren(w io.Writer, n *Node, prefix string) error {
	for i, c := range n.Children {
		connector, indent := branch, pipe
		if i == len(n.Children)-1 {
			connector, indent = last, blank
		}
		if _, err := io.WriteString(w, prefix+connector+c.Label()+"\n"); err != nil {
			return err
		}
		if err := fprintChildren(w, c, prefix+indent); err != nil {
			return err
		}
	}
	return nil
}
