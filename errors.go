package memocalc

import "math/big"

// DivisionError is an error indicating a modulo operation with a zero
// modulus.
type DivisionError struct {
	// X is the dividend of the failed operation.
	X *big.Int
}

func (err *DivisionError) Error() string {
	return "modulo by zero: " + err.X.String() + " % 0"
}

// InvalidExponentError is an error indicating an exponentiation whose
// exponent is negative or too large to be used as an exponent.
type InvalidExponentError struct {
	// Exponent is the rejected exponent.
	Exponent *big.Int
}

func (err *InvalidExponentError) Error() string {
	if err.Exponent.Sign() < 0 {
		return "negative exponent: " + err.Exponent.String()
	}
	return "exponent out of range: " + err.Exponent.String()
}

// MalformedTreeError is an error indicating a structurally invalid
// expression tree, such as an operation node with a missing operand. The
// construction API cannot produce such trees with non-nil arguments, but a
// zero Node or a nil child is still detected during evaluation.
type MalformedTreeError struct {
	// Op is the operation of the malformed node.
	Op Op
	// Nil reports that the node itself was nil rather than missing a child.
	Nil bool
}

func (err *MalformedTreeError) Error() string {
	if err.Nil {
		return "malformed tree: nil node"
	}
	return "malformed tree: " + err.Op.String() + " node with a missing operand"
}

var (
	_ error = (*DivisionError)(nil)
	_ error = (*InvalidExponentError)(nil)
	_ error = (*MalformedTreeError)(nil)
)
