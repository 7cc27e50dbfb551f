package sorting

import (
	"cmp"
	"math/rand"
)

// Below this length subarrays are finished with insertion sort.
const quickCutoff = 12

// Quick sorts a in ascending order using quicksort with an initial
// shuffle, median-of-three pivoting, Hoare partitioning, and an
// insertion-sort cutoff for small ranges.
// Complexity: O(n log n) expected, O(log n) stack; in-place; not stable.
func Quick[T cmp.Ordered](a []T) {
	QuickFunc(a, func(x, y T) bool { return x < y })
}

// QuickFunc is Quick with an explicit less function.
func QuickFunc[T any](a []T, less func(x, y T) bool) {
	// The shuffle is the probabilistic guarantee: after it, no input
	// ordering can force quadratic behavior.
	rand.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	quickSort(a, 0, len(a)-1, less)
}

// Quick3Way sorts a using Dijkstra three-way partitioning, which
// collapses runs of equal keys in a single pass. Linear time when the
// number of distinct keys is constant.
func Quick3Way[T cmp.Ordered](a []T) {
	Quick3WayFunc(a, func(x, y T) bool { return x < y })
}

// Quick3WayFunc is Quick3Way with an explicit less function.
func Quick3WayFunc[T any](a []T, less func(x, y T) bool) {
	rand.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	quick3Way(a, 0, len(a)-1, less)
}

func quickSort[T any](a []T, lo, hi int, less func(x, y T) bool) {
	for hi-lo >= quickCutoff {
		j := partition(a, lo, hi, less)
		// Recurse into the smaller side, loop on the larger: bounds
		// the stack at O(log n) even with unlucky pivots.
		if j-lo < hi-j {
			quickSort(a, lo, j-1, less)
			lo = j + 1
		} else {
			quickSort(a, j+1, hi, less)
			hi = j - 1
		}
	}
	insertion(a, lo, hi, less)
}

// partition places a pivot at its final position j and returns j,
// with a[lo..j-1] ≤ a[j] ≤ a[j+1..hi].
func partition[T any](a []T, lo, hi int, less func(x, y T) bool) int {
	medianOfThree(a, lo, hi, less)
	pivot := a[lo]

	i, j := lo, hi+1
	for {
		for i++; less(a[i], pivot); i++ {
			if i == hi {
				break
			}
		}
		for j--; less(pivot, a[j]); j-- {
		}
		if i >= j {
			break
		}
		a[i], a[j] = a[j], a[i]
	}
	a[lo], a[j] = a[j], a[lo]

	return j
}

// medianOfThree moves the median of a[lo], a[mid], a[hi] into a[lo]
// to serve as the pivot.
func medianOfThree[T any](a []T, lo, hi int, less func(x, y T) bool) {
	mid := lo + (hi-lo)/2
	if less(a[mid], a[lo]) {
		a[mid], a[lo] = a[lo], a[mid]
	}
	if less(a[hi], a[lo]) {
		a[hi], a[lo] = a[lo], a[hi]
	}
	if less(a[mid], a[hi]) {
		a[mid], a[hi] = a[hi], a[mid]
	}
	// Median now at a[hi]; swap into pivot position.
	a[lo], a[hi] = a[hi], a[lo]
}

// quick3Way partitions a[lo..hi] into <, ==, > bands around the pivot.
func quick3Way[T any](a []T, lo, hi int, less func(x, y T) bool) {
	if hi <= lo {
		return
	}
	pivot := a[lo]
	lt, gt := lo, hi
	i := lo + 1
	for i <= gt {
		switch {
		case less(a[i], pivot):
			a[lt], a[i] = a[i], a[lt]
			lt++
			i++
		case less(pivot, a[i]):
			a[i], a[gt] = a[gt], a[i]
			gt--
		default:
			i++
		}
	}
	quick3Way(a, lo, lt-1, less)
	quick3Way(a, gt+1, hi, less)
}
