package sorting

import "cmp"

// Search performs binary search for target in the ascending-sorted
// slice a, returning the leftmost index holding target, or -1 when
// absent. The result is unspecified if a is not sorted.
// Complexity: O(log n).
func Search[T cmp.Ordered](a []T, target T) int {
	return SearchFunc(a, target, func(x, y T) bool { return x < y })
}

// SearchFunc is Search with an explicit less function; a must be
// sorted under the same ordering.
func SearchFunc[T any](a []T, target T, less func(x, y T) bool) int {
	// Invariant: a[..lo-1] < target, a[hi..] >= target.
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) // avoids overflow on huge slices
		if less(a[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(a) && !less(target, a[lo]) {
		return lo
	}

	return -1
}

// IsSorted reports whether a is in ascending order. Complexity: O(n).
func IsSorted[T cmp.Ordered](a []T) bool {
	return IsSortedFunc(a, func(x, y T) bool { return x < y })
}

// IsSortedFunc is IsSorted with an explicit less function.
func IsSortedFunc[T any](a []T, less func(x, y T) bool) bool {
	for i := 1; i < len(a); i++ {
		if less(a[i], a[i-1]) {
			return false
		}
	}

	return true
}
