package memocalc

import (
	"math/big"
)

// Step builds the evaluation of the tree rooted at n as a single step over
// a Cache. Running the step yields the tree's value together with the cache
// extended by every calculation the evaluation performed. Subtrees evaluate
// left to right, so a right subtree already sees the results of the left
// one and repeated subtrees compute only once.
//
// Most callers want Evaluate or EvaluateWith instead. Step is the piece to
// use when composing evaluation with further cache-threading work via Bind.
func (n *Node) Step() Step[Cache, *big.Int] {
	switch {
	case n == nil:
		return failStep(&MalformedTreeError{Nil: true})
	case n.leaf():
		return Pure[Cache](n.value)
	case n.left == nil, n.right == nil:
		return failStep(&MalformedTreeError{Op: n.op})
	}
	operands := Bind(n.left.Step(), func(l *big.Int) Step[Cache, Calculation] {
		return Map(n.right.Step(), func(r *big.Int) Calculation {
			return NewCalculation(n.op, l, r)
		})
	})
	return Bind(operands, func(calc Calculation) Step[Cache, *big.Int] {
		return func(c Cache) (*big.Int, Cache, error) {
			return c.Cached(calc, Calculation.compute)
		}
	})
}

// failStep builds a step that fails with err, leaving the cache as it was.
func failStep(err error) Step[Cache, *big.Int] {
	return func(c Cache) (*big.Int, Cache, error) {
		return nil, c, err
	}
}

// Evaluate computes the value of the tree rooted at n starting from an
// empty cache. It returns the value along with the cache holding every
// calculation the evaluation performed, which can be passed to EvaluateWith
// to speed up later evaluations of related trees.
func Evaluate(n *Node) (*big.Int, Cache, error) {
	return EvaluateWith(NewCache(), n)
}

// EvaluateWith computes the value of the tree rooted at n, reusing any
// results already present in cache. It returns the value and the extended
// cache. The caller's cache is never modified. If evaluation fails, the
// returned cache is the one passed in, so the caller can fix the tree and
// retry without losing prior results.
func EvaluateWith(cache Cache, n *Node) (*big.Int, Cache, error) {
	v, next, err := n.Step()(cache)
	if err != nil {
		return nil, cache, err
	}
	return new(big.Int).Set(v), next, nil
}
