package sorting

import "cmp"

// Shell sorts a in ascending order using shellsort with the Knuth
// gap sequence 1, 4, 13, 40, ... (3h+1).
// Complexity: O(n^(3/2)) with this sequence; in-place; not stable.
func Shell[T cmp.Ordered](a []T) {
	ShellFunc(a, func(x, y T) bool { return x < y })
}

// ShellFunc is Shell with an explicit less function.
func ShellFunc[T any](a []T, less func(x, y T) bool) {
	n := len(a)

	// Largest gap in the 3h+1 sequence below n.
	h := 1
	for h < n/3 {
		h = 3*h + 1
	}

	for ; h >= 1; h /= 3 {
		// h-sort: insertion sort over each stride-h subsequence.
		for i := h; i < n; i++ {
			for j := i; j >= h && less(a[j], a[j-h]); j -= h {
				a[j], a[j-h] = a[j-h], a[j]
			}
		}
	}
}
