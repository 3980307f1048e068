// Package memocalc implements a memoizing arbitrary-precision integer
// calculator over explicit expression trees.
//
// Expression trees are built programmatically from Constant leaves and the
// Add, Mul, Mod, and Pow combinators; there is no textual syntax. Evaluating
// a tree threads an immutable Cache through the computation, so structurally
// identical sub-calculations are computed at most once per evaluation even
// when they appear in unrelated branches. Commutative operations are
// canonicalized, so 2+3 and 3+2 share a single cache entry.
//
// A Cache is a value. Deriving a new Cache never modifies the old one, which
// stays valid and can be evaluated against again, including from other
// goroutines. Keeping the final Cache of one evaluation and passing it to
// EvaluateWith carries memoized results into the next.
//
// Evaluation itself is written with a small state-threading combinator,
// Step, which sequences "take a cache, produce a value and a new cache"
// computations without shared mutable state. Step is exported for callers
// who want to compose their own cache-threaded computations.
package memocalc
