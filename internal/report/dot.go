package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/pyanalyzer/foundation/pylang/ast"
)

// WriteDOT writes the tree as a Graphviz digraph. Nodes are numbered in
// preorder as n0, n1, ...
func WriteDOT(w io.Writer, tree *ast.Node) error {
	ew := &errWriter{w: w}
	ew.println("digraph ParseTree {")
	ew.println(`  node [shape=box, fontname="Helvetica"];`)

	next := 0
	var visit func(n *ast.Node) int
	visit = func(n *ast.Node) int {
		id := next
		next++
		ew.print(fmt.Sprintf("  n%d [label=%s];\n", id, dotQuote(n.Label())))
		for _, c := range n.Children {
			child := visit(c)
			ew.print(fmt.Sprintf("  n%d -> n%d;\n", id, child))
		}
		return id
	}
	if tree != nil {
		visit(tree)
	}

	ew.println("}")
	return ew.err
}

func dotQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
