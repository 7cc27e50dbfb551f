package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/sorting"
)

// sorters under test, all sharing the in-place []int signature.
var sorters = map[string]func([]int){
	"Shell":     sorting.Shell[int],
	"Merge":     sorting.Merge[int],
	"MergeBU":   sorting.MergeBU[int],
	"Quick":     sorting.Quick[int],
	"Quick3Way": sorting.Quick3Way[int],
}

// TestSorters_AgainstStdlib checks every algorithm over a spread of
// shapes: empty, singleton, sorted, reversed, few distinct keys, and
// larger random inputs.
func TestSorters_AgainstStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	shapes := map[string][]int{
		"empty":     {},
		"single":    {7},
		"pair":      {2, 1},
		"sorted":    {1, 2, 3, 4, 5, 6, 7, 8, 9},
		"reversed":  {9, 8, 7, 6, 5, 4, 3, 2, 1},
		"dupes":     {2, 1, 2, 1, 1, 2, 2, 1, 1, 1},
		"allEqual":  {5, 5, 5, 5, 5, 5, 5, 5},
		"random100": randomInts(r, 100, 50),
		"random5k":  randomInts(r, 5000, 1_000_000),
	}

	for name, fn := range sorters {
		for shape, in := range shapes {
			t.Run(name+"/"+shape, func(t *testing.T) {
				got := append([]int(nil), in...)
				want := append([]int(nil), in...)
				fn(got)
				sort.Ints(want)
				require.Equal(t, want, got)
				assert.True(t, sorting.IsSorted(got))
			})
		}
	}
}

// TestMerge_Stability verifies equal keys keep their input order.
func TestMerge_Stability(t *testing.T) {
	type rec struct {
		key, seq int
	}
	r := rand.New(rand.NewSource(8))
	in := make([]rec, 400)
	for i := range in {
		in[i] = rec{key: r.Intn(10), seq: i}
	}

	for name, fn := range map[string]func([]rec, func(rec, rec) bool){
		"MergeFunc":   sorting.MergeFunc[rec],
		"MergeBUFunc": sorting.MergeBUFunc[rec],
	} {
		t.Run(name, func(t *testing.T) {
			a := append([]rec(nil), in...)
			fn(a, func(x, y rec) bool { return x.key < y.key })
			for i := 1; i < len(a); i++ {
				require.LessOrEqual(t, a[i-1].key, a[i].key)
				if a[i-1].key == a[i].key {
					require.Less(t, a[i-1].seq, a[i].seq, "stability broken at %d", i)
				}
			}
		})
	}
}

// TestFuncVariants_CustomOrder sorts descending through a comparator.
func TestFuncVariants_CustomOrder(t *testing.T) {
	a := []string{"fig", "apple", "quince", "pear"}
	sorting.QuickFunc(a, func(x, y string) bool { return x > y })
	assert.Equal(t, []string{"quince", "pear", "fig", "apple"}, a)

	b := []int{3, 1, 2}
	sorting.ShellFunc(b, func(x, y int) bool { return x > y })
	assert.Equal(t, []int{3, 2, 1}, b)
}

// TestSearch covers hits, misses, boundaries, and leftmost semantics.
func TestSearch(t *testing.T) {
	a := []int{1, 3, 3, 3, 5, 8, 13}

	assert.Equal(t, 0, sorting.Search(a, 1))
	assert.Equal(t, 6, sorting.Search(a, 13))
	assert.Equal(t, 4, sorting.Search(a, 5))
	assert.Equal(t, 1, sorting.Search(a, 3), "must return the leftmost duplicate")

	assert.Equal(t, -1, sorting.Search(a, 0))
	assert.Equal(t, -1, sorting.Search(a, 4))
	assert.Equal(t, -1, sorting.Search(a, 99))
	assert.Equal(t, -1, sorting.Search([]int{}, 1))
}

// TestSearch_RandomizedAgainstLinear cross-checks binary search with a
// linear scan over many random sorted slices.
func TestSearch_RandomizedAgainstLinear(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		a := randomInts(r, r.Intn(200), 40)
		sort.Ints(a)
		for q := -1; q <= 41; q++ {
			want := -1
			for i, v := range a {
				if v == q {
					want = i

					break
				}
			}
			require.Equal(t, want, sorting.Search(a, q), "slice %v query %d", a, q)
		}
	}
}

func randomInts(r *rand.Rand, n, max int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = r.Intn(max + 1)
	}

	return a
}
