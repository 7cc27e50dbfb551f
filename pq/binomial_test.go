package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/pq"
)

// TestBinomial_Order pops random input in sorted order.
func TestBinomial_Order(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	h := pq.NewBinomialMin[int]()

	in := make([]int, 257) // crosses several binomial-tree carries
	for i := range in {
		in[i] = r.Intn(1000)
		h.Push(in[i])
	}
	sort.Ints(in)

	require.Equal(t, len(in), h.Len())
	for _, w := range in {
		min, err := h.Peek()
		require.NoError(t, err)
		require.Equal(t, w, min)
		got, err := h.Pop()
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
	assert.True(t, h.Empty())

	_, err := h.Pop()
	assert.ErrorIs(t, err, pq.ErrEmptyHeap)
}

// TestBinomial_Meld merges two heaps and drains the union.
func TestBinomial_Meld(t *testing.T) {
	a := pq.NewBinomialMin[int]()
	b := pq.NewBinomialMin[int]()
	for i := 0; i < 10; i += 2 {
		a.Push(i)     // evens
		b.Push(i + 1) // odds
	}

	a.Meld(b)
	assert.Equal(t, 10, a.Len())
	assert.Equal(t, 0, b.Len())

	for want := 0; want < 10; want++ {
		got, err := a.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Melding an empty heap is a no-op.
	a.Meld(b)
	a.Meld(nil)
	assert.True(t, a.Empty())
}

// TestBinomial_CustomOrdering drives the heap through a comparator.
func TestBinomial_CustomOrdering(t *testing.T) {
	type task struct {
		name string
		prio int
	}
	h := pq.NewBinomialFunc(func(x, y task) bool { return x.prio > y.prio })
	h.Push(task{"low", 1})
	h.Push(task{"high", 9})
	h.Push(task{"mid", 4})

	got, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, "high", got.name)
}

// TestBinomial_InterleavedMeld stresses union with repeated melds of
// random fragments, cross-checked against a sorted oracle.
func TestBinomial_InterleavedMeld(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	main := pq.NewBinomialMin[int]()
	var all []int

	for round := 0; round < 20; round++ {
		frag := pq.NewBinomialMin[int]()
		for i := 0; i < r.Intn(30)+1; i++ {
			v := r.Intn(10_000)
			frag.Push(v)
			all = append(all, v)
		}
		main.Meld(frag)

		// Occasionally drain a few elements mid-stream.
		for i := 0; i < r.Intn(5) && !main.Empty(); i++ {
			got, err := main.Pop()
			require.NoError(t, err)
			sort.Ints(all)
			require.Equal(t, all[0], got)
			all = all[1:]
		}
	}

	sort.Ints(all)
	for _, w := range all {
		got, err := main.Pop()
		require.NoError(t, err)
		require.Equal(t, w, got)
	}
}
