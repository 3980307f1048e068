package memocalc

import (
	"encoding/binary"
	"math/big"
)

// A Calculation is the application of an operation to two operand values. It
// is the key under which results are memoized. Calculations for commutative
// operations are canonicalized at construction, so the calculation for 2+3
// is identical to the calculation for 3+2; non-commutative operations keep
// their operand order.
type Calculation struct {
	op   Op
	a, b *big.Int
}

// NewCalculation builds the canonical calculation for applying op to left
// and right. For commutative operations the operands are stored in sorted
// order, so swapping left and right yields an identical calculation. The
// operand values are retained, not copied; they must not be modified
// afterward.
func NewCalculation(op Op, left, right *big.Int) Calculation {
	if op.Commutative() && left.Cmp(right) > 0 {
		left, right = right, left
	}
	return Calculation{op: op, a: left, b: right}
}

// Op returns the calculation's operation.
func (c Calculation) Op() Op {
	return c.op
}

// Operands returns copies of the calculation's operands in canonical order.
func (c Calculation) Operands() (*big.Int, *big.Int) {
	return new(big.Int).Set(c.a), new(big.Int).Set(c.b)
}

// Equal reports whether c and o are the same calculation. Calculations are
// equal when their operations match and their canonical operand sequences
// match, so commutative calculations compare equal regardless of the operand
// order they were built with.
func (c Calculation) Equal(o Calculation) bool {
	return c.op == o.op && c.a.Cmp(o.a) == 0 && c.b.Cmp(o.b) == 0
}

// Key returns the canonical byte encoding of the calculation. Two
// calculations have equal keys exactly when they are Equal. The encoding is
// one operation byte followed by each operand as a sign byte, a uvarint
// magnitude length, and the big-endian magnitude.
func (c Calculation) Key() []byte {
	// 1 op byte, then at worst 1+10 bytes of framing per operand.
	dst := make([]byte, 0, 23+(c.a.BitLen()+c.b.BitLen())/8)
	dst = append(dst, byte(c.op))
	dst = appendOperand(dst, c.a)
	return appendOperand(dst, c.b)
}

func appendOperand(dst []byte, v *big.Int) []byte {
	dst = append(dst, byte(v.Sign()+1))
	mag := v.Bytes()
	dst = binary.AppendUvarint(dst, uint64(len(mag)))
	return append(dst, mag...)
}

// compute applies the calculation's operation to its canonical operands.
func (c Calculation) compute() (*big.Int, error) {
	return c.op.apply(c.a, c.b)
}

func (c Calculation) String() string {
	return c.op.String() + "(" + c.a.String() + ", " + c.b.String() + ")"
}
