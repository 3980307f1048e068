package memocalc

import (
	"github.com/xlab/treeprint"
)

// Render draws n as a multiline ASCII tree, one node per line, with
// operation nodes labeled by their operator symbol and leaves by their
// value. It is meant for diagnostics; String gives the compact infix form.
func Render(n *Node) string {
	t := treeprint.NewWithRoot(renderLabel(n))
	if n != nil && !n.leaf() {
		renderChildren(t, n)
	}
	return t.String()
}

func renderLabel(n *Node) string {
	switch {
	case n == nil:
		return "?"
	case n.leaf():
		return n.value.String()
	default:
		return string(n.op.symbol())
	}
}

func renderChildren(t treeprint.Tree, n *Node) {
	for _, c := range []*Node{n.left, n.right} {
		if c == nil || c.leaf() {
			t.AddNode(renderLabel(c))
			continue
		}
		renderChildren(t.AddBranch(renderLabel(c)), c)
	}
}
