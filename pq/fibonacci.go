package pq

import (
	"cmp"
	"math/bits"
)

// FibNode is a handle to an element stored in a Fibonacci heap.
// Handles are returned by Push and stay valid until the element is
// popped or deleted.
type FibNode[T any] struct {
	value T

	parent *FibNode[T]
	child  *FibNode[T] // any one child; siblings form a circular list
	left   *FibNode[T]
	right  *FibNode[T]

	degree int
	mark   bool // lost a child since becoming a child itself

	owner *Fibonacci[T] // nil once removed from the heap
}

// Value returns the element currently stored at this handle.
func (n *FibNode[T]) Value() T { return n.value }

// Fibonacci is a min-heap with O(1) amortized Push and
// DecreaseKey, and O(log n) amortized Pop. Roots and children live in
// circular doubly-linked lists; cascading cuts keep tree sizes
// exponential in node degree, which bounds the maximum degree by
// log_φ(n). Not safe for concurrent use.
type Fibonacci[T any] struct {
	min  *FibNode[T]
	size int
	less func(a, b T) bool
}

// NewFibonacciMin returns a Fibonacci min-heap over an ordered type.
func NewFibonacciMin[T cmp.Ordered]() *Fibonacci[T] {
	return &Fibonacci[T]{less: func(a, b T) bool { return a < b }}
}

// NewFibonacciFunc returns a Fibonacci heap ordered by less.
func NewFibonacciFunc[T any](less func(a, b T) bool) *Fibonacci[T] {
	return &Fibonacci[T]{less: less}
}

// Len returns the number of elements. Complexity: O(1).
func (f *Fibonacci[T]) Len() int { return f.size }

// Empty reports whether the heap holds no elements.
func (f *Fibonacci[T]) Empty() bool { return f.size == 0 }

// Push inserts x as a new root and returns its handle.
// Complexity: O(1).
func (f *Fibonacci[T]) Push(x T) *FibNode[T] {
	n := &FibNode[T]{value: x, owner: f}
	n.left, n.right = n, n
	f.spliceRoot(n)
	if f.less(x, f.min.value) {
		f.min = n
	}
	f.size++

	return n
}

// Peek returns the minimum element without removing it.
func (f *Fibonacci[T]) Peek() (T, error) {
	var zero T
	if f.min == nil {
		return zero, ErrEmptyHeap
	}

	return f.min.value, nil
}

// Pop removes and returns the minimum element.
// Complexity: O(log n) amortized.
func (f *Fibonacci[T]) Pop() (T, error) {
	var zero T
	z := f.min
	if z == nil {
		return zero, ErrEmptyHeap
	}

	// Promote z's children to roots.
	if z.child != nil {
		c := z.child
		for {
			next := c.right
			c.parent = nil
			c.left, c.right = c, c
			f.spliceRoot(c)
			if next == z.child {
				break
			}
			c = next
		}
		z.child = nil
	}

	// Unlink z from the root list.
	if z.right == z {
		f.min = nil
	} else {
		z.left.right = z.right
		z.right.left = z.left
		f.min = z.right // placeholder; consolidate fixes it
	}
	z.left, z.right, z.owner = nil, nil, nil
	f.size--

	if f.min != nil {
		f.consolidate()
	}

	return z.value, nil
}

// DecreaseKey lowers the element at handle n to x. Returns
// ErrForeignNode for handles not in this heap and ErrKeyOrder when x
// does not precede the current value. Complexity: O(1) amortized.
func (f *Fibonacci[T]) DecreaseKey(n *FibNode[T], x T) error {
	if n == nil || n.owner != f {
		return ErrForeignNode
	}
	if f.less(n.value, x) {
		return ErrKeyOrder
	}
	n.value = x

	if p := n.parent; p != nil && f.less(n.value, p.value) {
		f.cut(n, p)
		f.cascadingCut(p)
	}
	if f.less(n.value, f.min.value) {
		f.min = n
	}

	return nil
}

// Delete removes the element at handle n regardless of its value.
// Complexity: O(log n) amortized.
func (f *Fibonacci[T]) Delete(n *FibNode[T]) error {
	if n == nil || n.owner != f {
		return ErrForeignNode
	}

	// Hoist n to the root list as if it had the smallest value.
	if p := n.parent; p != nil {
		f.cut(n, p)
		f.cascadingCut(p)
	}
	f.min = n
	_, err := f.Pop()

	return err
}

// Meld absorbs other into f, leaving other empty.
// Both heaps must use the same ordering. Complexity: O(n) in the size
// of other: every absorbed node's owner handle is rewritten so its
// Update/Delete calls target f afterwards.
func (f *Fibonacci[T]) Meld(other *Fibonacci[T]) {
	if other == nil || other.min == nil {
		return
	}
	// Re-own every root's subtree lazily: ownership is checked via the
	// owner pointer, so walk the melded nodes once.
	other.forEach(other.min, func(n *FibNode[T]) { n.owner = f })

	if f.min == nil {
		f.min = other.min
	} else {
		// Concatenate the two circular root lists.
		a, b := f.min, other.min
		a.right.left = b.left
		b.left.right = a.right
		a.right = b
		b.left = a
		if f.less(b.value, a.value) {
			f.min = b
		}
	}
	f.size += other.size
	other.min = nil
	other.size = 0
}

// spliceRoot inserts n into the root list next to min.
func (f *Fibonacci[T]) spliceRoot(n *FibNode[T]) {
	if f.min == nil {
		n.left, n.right = n, n
		f.min = n

		return
	}
	n.right = f.min.right
	n.left = f.min
	f.min.right.left = n
	f.min.right = n
}

// consolidate links roots of equal degree until degrees are unique,
// then locates the new minimum.
func (f *Fibonacci[T]) consolidate() {
	// Degree never exceeds log_φ(n) ≤ 2·log₂(n)+1.
	slots := make([]*FibNode[T], 2*bits.Len(uint(f.size))+2)

	// Snapshot the root list; linking rewires it as we go.
	var roots []*FibNode[T]
	start := f.min
	for c := start; ; {
		roots = append(roots, c)
		c = c.right
		if c == start {
			break
		}
	}

	for _, n := range roots {
		for {
			d := n.degree
			rival := slots[d]
			if rival == nil {
				slots[d] = n

				break
			}
			slots[d] = nil
			if f.less(rival.value, n.value) {
				n, rival = rival, n
			}
			f.linkChild(rival, n) // rival under n
		}
	}

	f.min = nil
	for _, n := range slots {
		if n == nil {
			continue
		}
		n.left, n.right = n, n
		f.spliceRoot(n)
		if f.less(n.value, f.min.value) {
			f.min = n
		}
	}
}

// linkChild removes loser from the root list and makes it a child of
// winner, clearing its mark.
func (f *Fibonacci[T]) linkChild(loser, winner *FibNode[T]) {
	loser.left.right = loser.right
	loser.right.left = loser.left
	loser.parent = winner
	loser.mark = false
	if winner.child == nil {
		loser.left, loser.right = loser, loser
		winner.child = loser
	} else {
		loser.right = winner.child.right
		loser.left = winner.child
		winner.child.right.left = loser
		winner.child.right = loser
	}
	winner.degree++
}

// cut detaches n from parent p and reinstates it as an unmarked root.
func (f *Fibonacci[T]) cut(n, p *FibNode[T]) {
	if n.right == n {
		p.child = nil
	} else {
		n.left.right = n.right
		n.right.left = n.left
		if p.child == n {
			p.child = n.right
		}
	}
	p.degree--
	n.parent = nil
	n.mark = false
	n.left, n.right = n, n
	f.spliceRoot(n)
}

// cascadingCut walks up from p, cutting marked ancestors. A node is
// marked when it loses its first child; losing a second child expels
// it to the root list, which is what keeps subtree sizes exponential
// in degree.
func (f *Fibonacci[T]) cascadingCut(p *FibNode[T]) {
	for {
		gp := p.parent
		if gp == nil {
			return
		}
		if !p.mark {
			p.mark = true

			return
		}
		f.cut(p, gp)
		p = gp
	}
}

// forEach visits every node of the circular tree list rooted at head.
func (f *Fibonacci[T]) forEach(head *FibNode[T], fn func(*FibNode[T])) {
	if head == nil {
		return
	}
	c := head
	for {
		fn(c)
		f.forEach(c.child, fn)
		c = c.right
		if c == head {
			break
		}
	}
}
