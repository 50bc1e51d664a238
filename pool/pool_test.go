package pool

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(n int) *Pool[string, int] {
	p := New[string, int]("a")
	for i := range n {
		p.Append(i)
	}
	return p
}

func TestPoolAppendCount(t *testing.T) {
	p := New[string, string]("a")
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Count())
	assert.Equal(t, "a", p.Category())

	p.Append("x")
	p.Append("y")

	assert.False(t, p.IsEmpty())
	assert.Equal(t, 2, p.Count())
	assert.Equal(t, []string{"x", "y"}, p.All())
}

func TestPoolPrefix(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		n        int
		expected []int
	}{
		{name: "first_two", size: 5, n: 2, expected: []int{0, 1}},
		{name: "exact", size: 3, n: 3, expected: []int{0, 1, 2}},
		{name: "more_than_available", size: 3, n: 10, expected: []int{0, 1, 2}},
		{name: "negative_means_all", size: 3, n: -1, expected: []int{0, 1, 2}},
		{name: "zero", size: 3, n: 0, expected: []int{}},
		{name: "empty_pool", size: 0, n: 2, expected: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filled(tt.size)
			assert.Equal(t, tt.expected, p.Prefix(tt.n))
		})
	}
}

func TestPoolPrefixReturnsCopy(t *testing.T) {
	p := filled(3)

	got := p.Prefix(2)
	got[0] = 99
	got = got[:1]
	_ = append(got, 42)

	assert.Equal(t, []int{0, 1, 2}, p.All())
}

func TestPoolRandomSample(t *testing.T) {
	p := filled(10)
	r := rand.New(rand.NewPCG(1, 2))

	got := p.RandomSample(r, 4)
	require.Len(t, got, 4)

	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate element %d", v)
		seen[v] = true
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}

	// the pool itself is untouched
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p.All())
}

func TestPoolRandomSampleAll(t *testing.T) {
	p := filled(6)

	for _, n := range []int{-1, 6, 20} {
		got := p.RandomSample(rand.New(rand.NewPCG(7, uint64(n+100))), n)
		slices.Sort(got)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, got, "n=%d", n)
	}
}

func TestPoolRandomSampleDeterministicSeed(t *testing.T) {
	p := filled(20)

	a := p.RandomSample(rand.New(rand.NewPCG(3, 4)), 5)
	b := p.RandomSample(rand.New(rand.NewPCG(3, 4)), 5)
	assert.Equal(t, a, b)
}

func TestPoolRandomSampleNilRand(t *testing.T) {
	p := filled(5)

	got := p.RandomSample(nil, 5)
	slices.Sort(got)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestPoolRandomSampleUniform(t *testing.T) {
	// every element should be picked roughly equally often
	p := filled(4)
	r := rand.New(rand.NewPCG(11, 12))

	counts := make([]int, 4)
	const rounds = 4000
	for range rounds {
		for _, v := range p.RandomSample(r, 1) {
			counts[v]++
		}
	}

	for i, c := range counts {
		assert.InDelta(t, rounds/4, c, rounds/10, "element %d picked %d times", i, c)
	}
}
