package memocalc

// A Step is a stateful computation: applied to a state of type S, it yields
// a value of type A together with a successor state, or fails. Steps let
// cache-threaded computations be written by composition instead of by
// passing caches around by hand; evaluation of an expression tree is one
// big Step from Cache to *big.Int.
//
// Minimal definition: Pure and Bind are sufficient. Map is kept as an
// optimization to avoid the intermediate Pure closure when the
// transformation cannot fail and needs no state.
type Step[S, A any] func(S) (A, S, error)

// Pure lifts a value into a Step that yields it and leaves the state
// unchanged.
func Pure[S, A any](a A) Step[S, A] {
	return func(s S) (A, S, error) {
		return a, s, nil
	}
}

// Bind sequences two steps. It runs m, then feeds the resulting state into
// the step produced by f from m's value. If m fails, f is not consulted and
// the failure propagates with the state m returned.
func Bind[S, A, B any](m Step[S, A], f func(A) Step[S, B]) Step[S, B] {
	return func(s S) (B, S, error) {
		a, s, err := m(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return f(a)(s)
	}
}

// Map applies a pure function to the result of a step, threading the state
// through untouched. Map(m, f) is equivalent to Bind(m, func(a A) Step[S, B]
// { return Pure[S](f(a)) }) without the intermediate closure.
func Map[S, A, B any](m Step[S, A], f func(A) B) Step[S, B] {
	return func(s S) (B, S, error) {
		a, s, err := m(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return f(a), s, nil
	}
}
