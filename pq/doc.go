// Package pq provides the priority-queue family used across arbelos:
//
//   - Heap[T]        : slice-backed binary heap over an arbitrary
//     less function (O(log n) Push/Pop). NewMin/NewMax cover the
//     ordered-type cases; NewFunc takes a custom comparison.
//   - IndexMin[K]    : binary heap keyed by string item IDs with
//     position tracking, supporting Update (decrease-key) and Remove
//     in O(log n). IndexMax[K] is the mirror image.
//   - Binomial[T]    : mergeable heap of binomial trees; Meld of two
//     heaps in O(log n), Push amortized O(1).
//   - Fibonacci[T]   : handle-based heap with O(1) amortized Push and
//     DecreaseKey and O(log n) amortized Pop, the structure of choice
//     when decrease-key dominates (dense Dijkstra, Prim).
//
// All heaps are min-oriented under their less function: the element
// for which less(e, x) holds for all other x is the one returned by
// Peek/Pop. None of the types is safe for concurrent use.
//
// Choosing between them: Heap is the default; IndexMin serves
// algorithms that re-prioritize known items (shortest paths, MST);
// Binomial and Fibonacci matter when heaps must be melded or when
// decrease-key must be cheaper than O(log n).
package pq
