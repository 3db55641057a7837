package treemap

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the subtree rooted at n to w, one line per node, indented
// two spaces per level. Directories print as their name, files as
// "name: value". Diagnostic output only; the format is not a contract.
func Print[V any](w io.Writer, n *Node[V]) {
	printNode(w, n, 0)
}

func printNode[V any](w io.Writer, n *Node[V], depth int) {
	indent := strings.Repeat("  ", depth)
	if value, ok := n.Value(); ok {
		fmt.Fprintf(w, "%s%s: %v\n", indent, n.Name(), value)
		return
	}
	fmt.Fprintf(w, "%s%s\n", indent, n.Name())
	for _, child := range n.Children() {
		printNode(w, child, depth+1)
	}
}

// Fprint writes the whole tree to w, root line included.
func (t *TreeMap[V]) Fprint(w io.Writer) {
	Print(w, t.root)
}
