package memocalc_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/zephyrtronium/memocalc"
)

func TestCalculationCanonical(t *testing.T) {
	cases := []struct {
		name string
		op   memocalc.Op
		same bool
	}{
		{"add", memocalc.OpAdd, true},
		{"mul", memocalc.OpMul, true},
		{"mod", memocalc.OpMod, false},
		{"pow", memocalc.OpPow, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := memocalc.NewCalculation(c.op, big.NewInt(7), big.NewInt(3))
			y := memocalc.NewCalculation(c.op, big.NewInt(3), big.NewInt(7))
			if got := x.Equal(y); got != c.same {
				t.Errorf("%v.Equal(%v) = %v, want %v", x, y, got, c.same)
			}
			if got := bytes.Equal(x.Key(), y.Key()); got != c.same {
				t.Errorf("keys of %v and %v: equal = %v, want %v", x, y, got, c.same)
			}
		})
	}
}

func TestCalculationOperands(t *testing.T) {
	c := memocalc.NewCalculation(memocalc.OpAdd, big.NewInt(9), big.NewInt(4))
	a, b := c.Operands()
	if a.Int64() != 4 || b.Int64() != 9 {
		t.Errorf("commutative operands not in canonical order: got %v, %v", a, b)
	}
	// The returned values are copies.
	a.SetInt64(100)
	b.SetInt64(200)
	a, b = c.Operands()
	if a.Int64() != 4 || b.Int64() != 9 {
		t.Errorf("operands changed after mutating earlier copies: got %v, %v", a, b)
	}
	m := memocalc.NewCalculation(memocalc.OpMod, big.NewInt(9), big.NewInt(4))
	a, b = m.Operands()
	if a.Int64() != 9 || b.Int64() != 4 {
		t.Errorf("non-commutative operands reordered: got %v, %v", a, b)
	}
}

func TestCalculationKeys(t *testing.T) {
	// Pairs whose decimal digit strings collide when naively concatenated,
	// plus sign and operation variations. All must have distinct keys.
	calcs := []memocalc.Calculation{
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(1), big.NewInt(23)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(12), big.NewInt(3)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(123), big.NewInt(1)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(-1), big.NewInt(23)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(1), big.NewInt(-23)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(0), big.NewInt(123)),
		memocalc.NewCalculation(memocalc.OpPow, big.NewInt(1), big.NewInt(23)),
		memocalc.NewCalculation(memocalc.OpAdd, big.NewInt(1), big.NewInt(23)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(256), big.NewInt(1)),
		memocalc.NewCalculation(memocalc.OpMod, big.NewInt(1), big.NewInt(256)),
	}
	seen := make(map[string]memocalc.Calculation, len(calcs))
	for _, c := range calcs {
		k := string(c.Key())
		if prev, ok := seen[k]; ok {
			t.Errorf("%v and %v have the same key %x", prev, c, k)
		}
		seen[k] = c
	}
	// Keys are deterministic.
	for _, c := range calcs {
		if !bytes.Equal(c.Key(), c.Key()) {
			t.Errorf("%v key is not deterministic", c)
		}
	}
}

func TestCalculationString(t *testing.T) {
	cases := []struct {
		name string
		calc memocalc.Calculation
		want string
	}{
		{"canonical", memocalc.NewCalculation(memocalc.OpAdd, big.NewInt(3), big.NewInt(2)), "Add(2, 3)"},
		{"ordered", memocalc.NewCalculation(memocalc.OpMod, big.NewInt(7), big.NewInt(3)), "Mod(7, 3)"},
		{"negative", memocalc.NewCalculation(memocalc.OpPow, big.NewInt(-2), big.NewInt(3)), "Pow(-2, 3)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.calc.String(); got != c.want {
				t.Errorf("wrong string: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestCalculationOp(t *testing.T) {
	c := memocalc.NewCalculation(memocalc.OpPow, big.NewInt(2), big.NewInt(10))
	if c.Op() != memocalc.OpPow {
		t.Errorf("wrong op: want %v, got %v", memocalc.OpPow, c.Op())
	}
}
