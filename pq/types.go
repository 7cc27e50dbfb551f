// Package pq: sentinel errors shared by the heap variants.
package pq

import "errors"

var (
	// ErrEmptyHeap indicates Peek/Pop on a heap with no elements.
	ErrEmptyHeap = errors.New("pq: heap is empty")

	// ErrDuplicateItem indicates an Insert with an ID already present.
	ErrDuplicateItem = errors.New("pq: item already present")

	// ErrItemNotFound indicates an operation on an ID never inserted
	// (or already removed).
	ErrItemNotFound = errors.New("pq: item not found")

	// ErrKeyOrder indicates an Update that would move a key in the
	// wrong direction (e.g. increasing a key in a min-heap).
	ErrKeyOrder = errors.New("pq: key update violates heap direction")

	// ErrForeignNode indicates a handle that belongs to another heap.
	ErrForeignNode = errors.New("pq: node does not belong to this heap")
)
