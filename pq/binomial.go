package pq

import "cmp"

// binomialNode is a node in a binomial tree. child points at the
// highest-degree child; children and roots are chained via sibling.
type binomialNode[T any] struct {
	value   T
	degree  int
	child   *binomialNode[T]
	sibling *binomialNode[T]
}

// Binomial is a mergeable min-heap built from binomial trees. The
// root list is kept in ascending degree order with at most one tree
// per degree, so it never holds more than ⌊log₂ n⌋+1 trees.
//
// Complexity: Push O(1) amortized, Pop/Peek/Meld O(log n).
// Not safe for concurrent use.
type Binomial[T any] struct {
	head *binomialNode[T] // root list, ascending degree
	size int
	less func(a, b T) bool
}

// NewBinomialMin returns a binomial min-heap over an ordered type.
func NewBinomialMin[T cmp.Ordered]() *Binomial[T] {
	return &Binomial[T]{less: func(a, b T) bool { return a < b }}
}

// NewBinomialFunc returns a binomial heap ordered by less.
func NewBinomialFunc[T any](less func(a, b T) bool) *Binomial[T] {
	return &Binomial[T]{less: less}
}

// Len returns the number of elements. Complexity: O(1).
func (b *Binomial[T]) Len() int { return b.size }

// Empty reports whether the heap holds no elements.
func (b *Binomial[T]) Empty() bool { return b.size == 0 }

// Push inserts x by melding a singleton tree.
// Complexity: O(1) amortized, O(log n) worst case.
func (b *Binomial[T]) Push(x T) {
	b.head = b.union(b.head, &binomialNode[T]{value: x})
	b.size++
}

// Peek returns the minimum element without removing it.
// Complexity: O(log n) - scans the root list.
func (b *Binomial[T]) Peek() (T, error) {
	var zero T
	if b.head == nil {
		return zero, ErrEmptyHeap
	}
	min := b.head
	for cur := b.head.sibling; cur != nil; cur = cur.sibling {
		if b.less(cur.value, min.value) {
			min = cur
		}
	}

	return min.value, nil
}

// Pop removes and returns the minimum element. Complexity: O(log n).
func (b *Binomial[T]) Pop() (T, error) {
	var zero T
	if b.head == nil {
		return zero, ErrEmptyHeap
	}

	// Locate the minimum root and its predecessor.
	min, minPrev := b.head, (*binomialNode[T])(nil)
	for cur, prev := b.head.sibling, b.head; cur != nil; prev, cur = cur, cur.sibling {
		if b.less(cur.value, min.value) {
			min, minPrev = cur, prev
		}
	}

	// Unlink min from the root list.
	if minPrev == nil {
		b.head = min.sibling
	} else {
		minPrev.sibling = min.sibling
	}

	// Reverse min's children (stored highest degree first) into a
	// valid ascending root list, then meld it back.
	var rev *binomialNode[T]
	for child := min.child; child != nil; {
		next := child.sibling
		child.sibling = rev
		rev = child
		child = next
	}
	b.head = b.union(b.head, rev)
	b.size--

	return min.value, nil
}

// Meld absorbs other into b, leaving other empty.
// Both heaps must use the same ordering. Complexity: O(log n).
func (b *Binomial[T]) Meld(other *Binomial[T]) {
	if other == nil || other.head == nil {
		return
	}
	b.head = b.union(b.head, other.head)
	b.size += other.size
	other.head = nil
	other.size = 0
}

// union merges two ascending root lists and links trees of equal
// degree until at most one tree of each degree remains.
func (b *Binomial[T]) union(h1, h2 *binomialNode[T]) *binomialNode[T] {
	head := mergeByDegree(h1, h2)
	if head == nil {
		return nil
	}

	var prev *binomialNode[T]
	cur, next := head, head.sibling
	for next != nil {
		switch {
		case cur.degree != next.degree,
			next.sibling != nil && next.sibling.degree == cur.degree:
			// No link possible here (or three of a kind: defer one step).
			prev, cur = cur, next
		case b.less(cur.value, next.value):
			// cur wins: next becomes cur's child.
			cur.sibling = next.sibling
			link(cur, next)
		default:
			// next wins: cur becomes next's child.
			if prev == nil {
				head = next
			} else {
				prev.sibling = next
			}
			link(next, cur)
			cur = next
		}
		next = cur.sibling
	}

	return head
}

// link makes loser the leftmost child of winner (equal degrees).
func link[T any](winner, loser *binomialNode[T]) {
	loser.sibling = winner.child
	winner.child = loser
	winner.degree++
}

// mergeByDegree splices two root lists into one ascending-degree list.
func mergeByDegree[T any](h1, h2 *binomialNode[T]) *binomialNode[T] {
	var head, tail *binomialNode[T]
	appendNode := func(n *binomialNode[T]) {
		if tail == nil {
			head, tail = n, n
		} else {
			tail.sibling = n
			tail = n
		}
	}
	for h1 != nil && h2 != nil {
		if h1.degree <= h2.degree {
			next := h1.sibling
			appendNode(h1)
			h1 = next
		} else {
			next := h2.sibling
			appendNode(h2)
			h2 = next
		}
	}

	// Attach whichever list remains; it is already in ascending order.
	rest := h1
	if rest == nil {
		rest = h2
	}
	if tail == nil {
		return rest
	}
	tail.sibling = rest

	return head
}
