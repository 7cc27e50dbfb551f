package pq

import "cmp"

// Heap is a slice-backed binary heap ordered by a less function:
// the root minimizes less. The zero value is not usable; construct
// with NewMin, NewMax, or NewFunc.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewMin returns a min-heap over an ordered element type.
func NewMin[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a < b }}
}

// NewMax returns a max-heap over an ordered element type.
func NewMax[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a > b }}
}

// NewFunc returns a heap ordered by the given less function, seeded
// with the provided items (heapified in O(n)).
func NewFunc[T any](less func(a, b T) bool, items ...T) *Heap[T] {
	h := &Heap[T]{less: less, items: items}
	for i := len(items)/2 - 1; i >= 0; i-- {
		h.sink(i)
	}

	return h
}

// Len returns the number of elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.items) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.items) == 0 }

// Push inserts x. Complexity: O(log n).
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.swim(len(h.items) - 1)
}

// Peek returns the top element without removing it.
// Returns ErrEmptyHeap when empty.
func (h *Heap[T]) Peek() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Pop removes and returns the top element. Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = zero // release reference for GC
	h.items = h.items[:last]
	if last > 0 {
		h.sink(0)
	}

	return top, nil
}

// swim restores the heap invariant upward from index i.
func (h *Heap[T]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// sink restores the heap invariant downward from index i.
func (h *Heap[T]) sink(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			child = right
		}
		if !h.less(h.items[child], h.items[i]) {
			break
		}
		h.items[i], h.items[child] = h.items[child], h.items[i]
		i = child
	}
}
