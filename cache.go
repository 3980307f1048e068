package memocalc

import (
	"math/big"

	iradix "github.com/hashicorp/go-immutable-radix"
)

// A Cache records the results of previously computed calculations along with
// a count of how often a recorded result was asked for again. A Cache is an
// immutable value: every operation that would change it returns a new Cache
// instead, and the old one remains valid, observing its original entries and
// hit count. The new Cache shares structure with the old one, so deriving is
// cheap even for large caches.
//
// The zero Cache is empty and ready to use. Cache values may be copied and
// read from any number of goroutines without locking.
type Cache struct {
	entries *iradix.Tree
	hits    int
}

// NewCache returns an empty cache with a zero hit count.
func NewCache() Cache {
	return Cache{entries: iradix.New()}
}

func (c Cache) tree() *iradix.Tree {
	if c.entries == nil {
		return iradix.New()
	}
	return c.entries
}

// Cached returns the result of calc, consulting the cache before computing.
//
// If calc already has a recorded result, Cached returns that result and a
// cache whose hit count is one higher; compute is not invoked. Otherwise
// Cached invokes compute(calc) and returns its result and a cache extended
// with the new entry, leaving the hit count unchanged. If compute fails, the
// error is returned with c itself, which remains valid.
//
// The returned value is shared with the cache and must not be modified.
func (c Cache) Cached(calc Calculation, compute func(Calculation) (*big.Int, error)) (*big.Int, Cache, error) {
	t := c.tree()
	key := calc.Key()
	if v, ok := t.Get(key); ok {
		return v.(*big.Int), Cache{entries: t, hits: c.hits + 1}, nil
	}
	r, err := compute(calc)
	if err != nil {
		return nil, c, err
	}
	t2, _, _ := t.Insert(key, r)
	return r, Cache{entries: t2, hits: c.hits}, nil
}

// Get returns a copy of the recorded result for calc, if there is one. Get
// is a read-only probe: it does not count as a hit and never computes.
func (c Cache) Get(calc Calculation) (*big.Int, bool) {
	if c.entries == nil {
		return nil, false
	}
	v, ok := c.entries.Get(calc.Key())
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(v.(*big.Int)), true
}

// Hits returns how many times a lookup found an already recorded result.
func (c Cache) Hits() int {
	return c.hits
}

// Len returns the number of recorded results.
func (c Cache) Len() int {
	if c.entries == nil {
		return 0
	}
	return c.entries.Len()
}
