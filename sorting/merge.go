package sorting

import "cmp"

// Below this length subarrays are finished with insertion sort; the
// recursion overhead outweighs merging on tiny ranges.
const mergeCutoff = 12

// Merge sorts a in ascending order using top-down mergesort.
// Complexity: O(n log n) compares guaranteed, O(n) extra space; stable.
func Merge[T cmp.Ordered](a []T) {
	MergeFunc(a, func(x, y T) bool { return x < y })
}

// MergeFunc is Merge with an explicit less function.
func MergeFunc[T any](a []T, less func(x, y T) bool) {
	if len(a) < 2 {
		return
	}
	aux := make([]T, len(a))
	mergeSort(a, aux, 0, len(a)-1, less)
}

// MergeBU sorts a using bottom-up mergesort: log n passes of pairwise
// merges, no recursion. Same guarantees as Merge; stable.
func MergeBU[T cmp.Ordered](a []T) {
	MergeBUFunc(a, func(x, y T) bool { return x < y })
}

// MergeBUFunc is MergeBU with an explicit less function.
func MergeBUFunc[T any](a []T, less func(x, y T) bool) {
	n := len(a)
	if n < 2 {
		return
	}
	aux := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width - 1
			hi := min(lo+2*width-1, n-1)
			merge(a, aux, lo, mid, hi, less)
		}
	}
}

// mergeSort recursively sorts a[lo..hi] using aux for merging.
func mergeSort[T any](a, aux []T, lo, hi int, less func(x, y T) bool) {
	if hi-lo < mergeCutoff {
		insertion(a, lo, hi, less)

		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, aux, lo, mid, less)
	mergeSort(a, aux, mid+1, hi, less)

	// Already in order across the seam: merging would be a copy.
	if !less(a[mid+1], a[mid]) {
		return
	}
	merge(a, aux, lo, mid, hi, less)
}

// merge combines the sorted halves a[lo..mid] and a[mid+1..hi].
// Taking from the left half on ties keeps the sort stable.
func merge[T any](a, aux []T, lo, mid, hi int, less func(x, y T) bool) {
	copy(aux[lo:hi+1], a[lo:hi+1])

	i, j := lo, mid+1
	for k := lo; k <= hi; k++ {
		switch {
		case i > mid:
			a[k] = aux[j]
			j++
		case j > hi:
			a[k] = aux[i]
			i++
		case less(aux[j], aux[i]):
			a[k] = aux[j]
			j++
		default:
			a[k] = aux[i]
			i++
		}
	}
}

// insertion sorts a[lo..hi] by insertion; stable.
func insertion[T any](a []T, lo, hi int, less func(x, y T) bool) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && less(a[j], a[j-1]); j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
