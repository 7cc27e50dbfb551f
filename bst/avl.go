package bst

import "cmp"

// avlNode augments the search-tree node with a cached height for
// O(1) balance-factor checks.
type avlNode[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *avlNode[K, V]
	size        int
	height      int // leaf = 0
}

// AVL is a height-balanced binary search tree symbol table.
//
// Invariant: for every node, |height(left) - height(right)| ≤ 1,
// restored after each Put/Delete by at most O(log n) rotations.
// All operations are O(log n) worst case.
// The zero value is an empty, usable table.
type AVL[K cmp.Ordered, V any] struct {
	root *avlNode[K, V]
}

// NewAVL returns an empty AVL tree table.
func NewAVL[K cmp.Ordered, V any]() *AVL[K, V] { return &AVL[K, V]{} }

// Size returns the number of keys. Complexity: O(1).
func (t *AVL[K, V]) Size() int { return avlSize(t.root) }

// IsEmpty reports whether the table holds no keys.
func (t *AVL[K, V]) IsEmpty() bool { return t.root == nil }

// Height returns the tree height (-1 for empty). Complexity: O(1).
func (t *AVL[K, V]) Height() int { return avlHeight(t.root) }

// Put inserts key→val, overwriting any previous value.
// Complexity: O(log n).
func (t *AVL[K, V]) Put(key K, val V) {
	t.root = avlPut(t.root, key, val)
}

// Get returns the value bound to key and whether it exists.
// Complexity: O(log n).
func (t *AVL[K, V]) Get(key K) (V, bool) {
	x := t.root
	for x != nil {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			x = x.right
		default:
			return x.val, true
		}
	}
	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (t *AVL[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Min returns the smallest key. Returns ErrEmptyTree when empty.
func (t *AVL[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	x := t.root
	for x.left != nil {
		x = x.left
	}

	return x.key, nil
}

// Max returns the largest key. Returns ErrEmptyTree when empty.
func (t *AVL[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	x := t.root
	for x.right != nil {
		x = x.right
	}

	return x.key, nil
}

// Floor returns the largest key ≤ key, or ErrKeyNotFound.
func (t *AVL[K, V]) Floor(key K) (K, error) {
	var best K
	found := false
	for x := t.root; x != nil; {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			best, found = x.key, true
			x = x.right
		default:
			return x.key, nil
		}
	}
	if !found {
		var zero K

		return zero, ErrKeyNotFound
	}

	return best, nil
}

// Ceiling returns the smallest key ≥ key, or ErrKeyNotFound.
func (t *AVL[K, V]) Ceiling(key K) (K, error) {
	var best K
	found := false
	for x := t.root; x != nil; {
		switch {
		case key > x.key:
			x = x.right
		case key < x.key:
			best, found = x.key, true
			x = x.left
		default:
			return x.key, nil
		}
	}
	if !found {
		var zero K

		return zero, ErrKeyNotFound
	}

	return best, nil
}

// Rank returns the number of keys strictly smaller than key.
// Complexity: O(log n).
func (t *AVL[K, V]) Rank(key K) int {
	r := 0
	for x := t.root; x != nil; {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			r += 1 + avlSize(x.left)
			x = x.right
		default:
			return r + avlSize(x.left)
		}
	}

	return r
}

// Select returns the key with the given in-order rank.
// Returns ErrRankOutOfBounds for rank ∉ [0, Size).
// Complexity: O(log n).
func (t *AVL[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= avlSize(t.root) {
		var zero K

		return zero, ErrRankOutOfBounds
	}
	x := t.root
	for {
		ls := avlSize(x.left)
		switch {
		case k < ls:
			x = x.left
		case k > ls:
			x = x.right
			k -= ls + 1
		default:
			return x.key, nil
		}
	}
}

// Keys returns every key in ascending order. Complexity: O(n).
func (t *AVL[K, V]) Keys() []K {
	keys := make([]K, 0, avlSize(t.root))
	avlInorder(t.root, func(n *avlNode[K, V]) { keys = append(keys, n.key) })

	return keys
}

// RangeKeys returns the keys in [lo, hi] in ascending order.
func (t *AVL[K, V]) RangeKeys(lo, hi K) []K {
	var keys []K
	avlRange(t.root, lo, hi, &keys)

	return keys
}

// InOrder calls fn for every key/value pair in ascending key order.
func (t *AVL[K, V]) InOrder(fn func(key K, val V)) {
	avlInorder(t.root, func(n *avlNode[K, V]) { fn(n.key, n.val) })
}

// Delete removes key. Returns ErrKeyNotFound if absent.
// Complexity: O(log n).
func (t *AVL[K, V]) Delete(key K) error {
	if !t.Contains(key) {
		return ErrKeyNotFound
	}
	t.root = avlDelete(t.root, key)

	return nil
}

// DeleteMin removes the smallest key. Returns ErrEmptyTree when empty.
func (t *AVL[K, V]) DeleteMin() error {
	k, err := t.Min()
	if err != nil {
		return err
	}

	return t.Delete(k)
}

// DeleteMax removes the largest key. Returns ErrEmptyTree when empty.
func (t *AVL[K, V]) DeleteMax() error {
	k, err := t.Max()
	if err != nil {
		return err
	}

	return t.Delete(k)
}

// --- balancing machinery ---

func avlSize[K cmp.Ordered, V any](x *avlNode[K, V]) int {
	if x == nil {
		return 0
	}

	return x.size
}

func avlHeight[K cmp.Ordered, V any](x *avlNode[K, V]) int {
	if x == nil {
		return -1
	}

	return x.height
}

// balanceFactor is height(left) - height(right); positive leans left.
func balanceFactor[K cmp.Ordered, V any](x *avlNode[K, V]) int {
	return avlHeight(x.left) - avlHeight(x.right)
}

func update[K cmp.Ordered, V any](x *avlNode[K, V]) {
	x.size = 1 + avlSize(x.left) + avlSize(x.right)
	x.height = 1 + max(avlHeight(x.left), avlHeight(x.right))
}

// rotateRight lifts x.left over x.
func rotateRight[K cmp.Ordered, V any](x *avlNode[K, V]) *avlNode[K, V] {
	y := x.left
	x.left = y.right
	y.right = x
	update(x)
	update(y)

	return y
}

// rotateLeft lifts x.right over x.
func rotateLeft[K cmp.Ordered, V any](x *avlNode[K, V]) *avlNode[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	update(x)
	update(y)

	return y
}

// restore re-establishes the AVL invariant at x after one insert or
// delete below it, applying one single or double rotation.
func restore[K cmp.Ordered, V any](x *avlNode[K, V]) *avlNode[K, V] {
	update(x)
	switch bf := balanceFactor(x); {
	case bf > 1:
		if balanceFactor(x.left) < 0 {
			x.left = rotateLeft(x.left) // left-right case
		}
		x = rotateRight(x)
	case bf < -1:
		if balanceFactor(x.right) > 0 {
			x.right = rotateRight(x.right) // right-left case
		}
		x = rotateLeft(x)
	}

	return x
}

func avlPut[K cmp.Ordered, V any](x *avlNode[K, V], key K, val V) *avlNode[K, V] {
	if x == nil {
		return &avlNode[K, V]{key: key, val: val, size: 1}
	}
	switch {
	case key < x.key:
		x.left = avlPut(x.left, key, val)
	case key > x.key:
		x.right = avlPut(x.right, key, val)
	default:
		x.val = val

		return x
	}

	return restore(x)
}

func avlDelete[K cmp.Ordered, V any](x *avlNode[K, V], key K) *avlNode[K, V] {
	if x == nil {
		return nil
	}
	switch {
	case key < x.key:
		x.left = avlDelete(x.left, key)
	case key > x.key:
		x.right = avlDelete(x.right, key)
	default:
		if x.left == nil {
			return x.right
		}
		if x.right == nil {
			return x.left
		}
		// Two children: replace with the in-order successor, then
		// delete the successor from the right subtree.
		succ := x.right
		for succ.left != nil {
			succ = succ.left
		}
		x.key, x.val = succ.key, succ.val
		x.right = avlDelete(x.right, succ.key)
	}

	return restore(x)
}

func avlInorder[K cmp.Ordered, V any](x *avlNode[K, V], fn func(*avlNode[K, V])) {
	if x == nil {
		return
	}
	avlInorder(x.left, fn)
	fn(x)
	avlInorder(x.right, fn)
}

func avlRange[K cmp.Ordered, V any](x *avlNode[K, V], lo, hi K, out *[]K) {
	if x == nil {
		return
	}
	if lo < x.key {
		avlRange(x.left, lo, hi, out)
	}
	if lo <= x.key && x.key <= hi {
		*out = append(*out, x.key)
	}
	if hi > x.key {
		avlRange(x.right, lo, hi, out)
	}
}
