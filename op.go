package memocalc

import (
	"math"
	"math/big"
)

// Op identifies one of the calculator's binary operations.
type Op int8

const (
	OpAdd Op = iota // addition
	OpMul           // multiplication
	OpMod           // Euclidean remainder
	OpPow           // exponentiation, reduced mod 2^63-1
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Op -trimprefix=Op
//go:generate go mod tidy

// powModulus bounds the results of OpPow so that towers of exponents cannot
// grow without limit. Reduction changes results once they reach 2^63-1,
// which is part of the operation's contract.
var powModulus = big.NewInt(math.MaxInt64)

// Commutative reports whether the operation gives the same result with its
// operands swapped. Commutative operations share cache entries regardless of
// operand order.
func (op Op) Commutative() bool {
	switch op {
	case OpAdd, OpMul:
		return true
	}
	return false
}

// symbol returns the operator's infix symbol for rendering.
func (op Op) symbol() byte {
	switch op {
	case OpAdd:
		return '+'
	case OpMul:
		return '*'
	case OpMod:
		return '%'
	case OpPow:
		return '^'
	default:
		return '?'
	}
}

// apply computes the operation on a and b. The result is always a new value;
// a and b are never modified.
func (op Op) apply(a, b *big.Int) (*big.Int, error) {
	switch op {
	case OpAdd:
		return new(big.Int).Add(a, b), nil
	case OpMul:
		return new(big.Int).Mul(a, b), nil
	case OpMod:
		if b.Sign() == 0 {
			return nil, &DivisionError{X: a}
		}
		// Euclidean remainder: the result is in [0, |b|) for any sign of
		// either operand.
		return new(big.Int).Mod(a, b), nil
	case OpPow:
		if b.Sign() < 0 || !b.IsInt64() {
			return nil, &InvalidExponentError{Exponent: b}
		}
		return new(big.Int).Exp(a, b, powModulus), nil
	default:
		panic("memocalc: invalid operation " + op.String())
	}
}
