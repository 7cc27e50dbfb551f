package pq_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/pq"
)

// TestIndexMin_Basic covers insert/peek/pop ordering by key.
func TestIndexMin_Basic(t *testing.T) {
	q := pq.NewIndexMin[float64]()
	require.NoError(t, q.Insert("B", 2))
	require.NoError(t, q.Insert("A", 3))
	require.NoError(t, q.Insert("C", 1))

	id, key, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "C", id)
	assert.Equal(t, 1.0, key)

	var order []string
	for !q.Empty() {
		id, _, err = q.Pop()
		require.NoError(t, err)
		order = append(order, id)
	}
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

// TestIndexMin_Update exercises decrease-key and its direction guard.
func TestIndexMin_Update(t *testing.T) {
	q := pq.NewIndexMin[int]()
	require.NoError(t, q.Insert("far", 10))
	require.NoError(t, q.Insert("near", 1))

	// Moving "far" below "near" must reorder the heap.
	require.NoError(t, q.Update("far", 0))
	id, key, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "far", id)
	assert.Equal(t, 0, key)

	// Increasing a key in a min-heap is rejected.
	assert.ErrorIs(t, q.Update("near", 5), pq.ErrKeyOrder)
	// Unknown items are rejected.
	assert.ErrorIs(t, q.Update("ghost", 0), pq.ErrItemNotFound)
}

// TestIndexMin_DuplicateAndRemove covers membership bookkeeping.
func TestIndexMin_DuplicateAndRemove(t *testing.T) {
	q := pq.NewIndexMin[int]()
	require.NoError(t, q.Insert("A", 1))
	assert.ErrorIs(t, q.Insert("A", 2), pq.ErrDuplicateItem)

	require.NoError(t, q.Insert("B", 2))
	require.NoError(t, q.Insert("C", 3))
	require.NoError(t, q.Remove("B"))
	assert.False(t, q.Contains("B"))
	assert.ErrorIs(t, q.Remove("B"), pq.ErrItemNotFound)

	key, err := q.KeyOf("C")
	require.NoError(t, err)
	assert.Equal(t, 3, key)

	id, _, err := q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "A", id)
	id, _, err = q.Pop()
	require.NoError(t, err)
	assert.Equal(t, "C", id)
	assert.True(t, q.Empty())
}

// TestIndexMax_Mirror verifies the max orientation end to end.
func TestIndexMax_Mirror(t *testing.T) {
	q := pq.NewIndexMax[int]()
	require.NoError(t, q.Insert("low", 1))
	require.NoError(t, q.Insert("high", 9))
	require.NoError(t, q.Insert("mid", 5))

	// Increase-key moves an item up in a max-heap.
	require.NoError(t, q.Update("mid", 20))
	assert.ErrorIs(t, q.Update("low", 0), pq.ErrKeyOrder)

	var order []string
	for !q.Empty() {
		id, _, err := q.Pop()
		require.NoError(t, err)
		order = append(order, id)
	}
	assert.Equal(t, []string{"mid", "high", "low"}, order)
}

// TestIndexMin_RandomizedConsistency interleaves inserts, updates, and
// removals, then checks popped keys arrive in non-decreasing order.
func TestIndexMin_RandomizedConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	q := pq.NewIndexMin[int]()

	keys := make(map[string]int)
	for i := 0; i < 300; i++ {
		id := fmt.Sprintf("n%d", r.Intn(120))
		switch {
		case !q.Contains(id):
			k := r.Intn(10_000)
			require.NoError(t, q.Insert(id, k))
			keys[id] = k
		case r.Intn(3) == 0:
			require.NoError(t, q.Remove(id))
			delete(keys, id)
		default:
			k := keys[id] - 1 - r.Intn(100)
			require.NoError(t, q.Update(id, k))
			keys[id] = k
		}
	}

	require.Equal(t, len(keys), q.Len())
	prev := -1 << 62
	for !q.Empty() {
		id, k, err := q.Pop()
		require.NoError(t, err)
		require.GreaterOrEqual(t, k, prev)
		require.Equal(t, keys[id], k)
		prev = k
	}
}
