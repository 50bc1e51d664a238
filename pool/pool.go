// Package pool holds the elements collected for a single category.
//
// A Pool keeps elements in insertion order so that prefix selection is
// deterministic. Random selection draws without replacement and never
// reorders the underlying slice.
//
// Pools are not safe for concurrent use.
package pool

import (
	"math/rand/v2"
)

// Rand is the part of a random source a Pool needs. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Perm(n int) []int
}

type globalRand struct{}

func (globalRand) Perm(n int) []int { return rand.Perm(n) }

// Pool is an ordered, append-only collection of elements for one category.
type Pool[K comparable, E any] struct {
	category K
	elements []E
}

// New returns an empty pool for category.
func New[K comparable, E any](category K) *Pool[K, E] {
	return &Pool[K, E]{category: category}
}

// Category returns the category the pool was created for
func (p *Pool[K, E]) Category() K {
	return p.category
}

// Append adds e to the end of the pool.
func (p *Pool[K, E]) Append(e E) {
	p.elements = append(p.elements, e)
}

// Count returns the number of elements in the pool.
func (p *Pool[K, E]) Count() int {
	return len(p.elements)
}

// IsEmpty reports whether the pool has no elements.
func (p *Pool[K, E]) IsEmpty() bool {
	return p.Count() == 0
}

// All returns a copy of every element in insertion order.
func (p *Pool[K, E]) All() []E {
	return p.Prefix(-1)
}

// Prefix returns a copy of the first n elements in insertion order. A
// negative n, or one larger than Count, returns all elements.
func (p *Pool[K, E]) Prefix(n int) []E {
	if n < 0 || n > len(p.elements) {
		n = len(p.elements)
	}
	out := make([]E, n)
	copy(out, p.elements[:n])
	return out
}

// RandomSample returns n elements chosen uniformly without replacement, in
// random order. A negative n, or one larger than Count, returns a random
// permutation of the whole pool. A nil r uses the math/rand/v2 global
// source.
func (p *Pool[K, E]) RandomSample(r Rand, n int) []E {
	if r == nil {
		r = globalRand{}
	}
	if n < 0 || n > len(p.elements) {
		n = len(p.elements)
	}

	perm := r.Perm(len(p.elements))
	out := make([]E, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, p.elements[idx])
	}
	return out
}
