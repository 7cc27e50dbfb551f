// Package sorting implements the classic comparison sorts - shellsort,
// mergesort, and quicksort - plus binary search over sorted slices.
//
// Every algorithm comes in two flavors: a plain form over ordered
// element types (Shell, Merge, Quick, ...) and a Func form taking an
// explicit less function for arbitrary element types.
//
// Properties at a glance:
//
//	Shell      O(n^(3/2)) worst known bound   in-place, not stable
//	Merge      O(n log n) guaranteed          O(n) extra, stable
//	MergeBU    O(n log n) guaranteed          O(n) extra, stable, no recursion
//	Quick      O(n log n) expected            in-place, not stable
//	Quick3Way  O(n log n); linear when the    in-place, not stable
//	           input has few distinct keys
//
// Quick and Quick3Way shuffle their input first, so adversarial
// orderings cannot trigger the quadratic worst case.
//
// Search performs binary search in a sorted slice and returns the
// leftmost index of the target, or -1 when absent.
package sorting
