package memocalc

import (
	"math/big"
	"strings"
)

// A Node is one node in an expression tree: either a constant leaf or the
// application of an operation to two child trees. Nodes are immutable once
// constructed and carry no evaluation state; all memoization lives in the
// Cache threaded through evaluation.
type Node struct {
	op    Op
	value *big.Int

	left  *Node
	right *Node
}

// Constant builds a leaf holding a copy of v. A nil v is treated as zero.
func Constant(v *big.Int) *Node {
	c := new(big.Int)
	if v != nil {
		c.Set(v)
	}
	return &Node{value: c}
}

// Int builds a leaf holding x. It is shorthand for Constant of a small
// constant.
func Int(x int64) *Node {
	return &Node{value: big.NewInt(x)}
}

// Add builds the tree computing left + right.
func Add(left, right *Node) *Node {
	return &Node{op: OpAdd, left: left, right: right}
}

// Mul builds the tree computing left * right.
func Mul(left, right *Node) *Node {
	return &Node{op: OpMul, left: left, right: right}
}

// Mod builds the tree computing the Euclidean remainder of left by right.
// Evaluation fails with a DivisionError when right evaluates to zero.
func Mod(left, right *Node) *Node {
	return &Node{op: OpMod, left: left, right: right}
}

// Pow builds the tree computing left raised to right, reduced mod 2^63-1.
// Evaluation fails with an InvalidExponentError when right evaluates to a
// negative value or one that does not fit in an int64.
func Pow(left, right *Node) *Node {
	return &Node{op: OpPow, left: left, right: right}
}

// leaf reports whether n is a constant leaf.
func (n *Node) leaf() bool {
	return n.value != nil
}

// Count returns the number of operation nodes in the tree. Leaves count for
// nothing, so Count is the number of calculations a completely uncached
// evaluation performs.
func (n *Node) Count() int {
	if n == nil || n.leaf() {
		return 0
	}
	return 1 + n.left.Count() + n.right.Count()
}

func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch {
	case n == nil:
		b.WriteByte('?')
	case n.leaf():
		b.WriteString(n.value.String())
	default:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteByte(n.op.symbol())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	}
}
