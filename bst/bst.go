package bst

import "cmp"

// bstNode is a node of the unbalanced tree. size counts the nodes in
// the subtree rooted here, enabling Rank/Select.
type bstNode[K cmp.Ordered, V any] struct {
	key         K
	val         V
	left, right *bstNode[K, V]
	size        int
}

// BST is an unbalanced binary search tree symbol table. Operations
// cost O(h); h stays logarithmic for random insertion orders.
// The zero value is an empty, usable table.
type BST[K cmp.Ordered, V any] struct {
	root *bstNode[K, V]
}

// NewBST returns an empty binary search tree table.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] { return &BST[K, V]{} }

// Size returns the number of keys. Complexity: O(1).
func (t *BST[K, V]) Size() int { return size(t.root) }

// IsEmpty reports whether the table holds no keys.
func (t *BST[K, V]) IsEmpty() bool { return t.root == nil }

// Height returns the tree height (-1 for empty, 0 for a single node).
// Complexity: O(n).
func (t *BST[K, V]) Height() int { return height(t.root) }

// Put inserts key→val, overwriting any previous value. Complexity: O(h).
func (t *BST[K, V]) Put(key K, val V) {
	t.root = bstPut(t.root, key, val)
}

// Get returns the value bound to key and whether it exists. Complexity: O(h).
func (t *BST[K, V]) Get(key K) (V, bool) {
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
func (t *BST[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Min returns the smallest key. Returns ErrEmptyTree when empty.
func (t *BST[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}

	return minNode(t.root).key, nil
}

// Max returns the largest key. Returns ErrEmptyTree when empty.
func (t *BST[K, V]) Max() (K, error) {
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
func (t *BST[K, V]) Floor(key K) (K, error) { return floor(t.root, key) }

// Ceiling returns the smallest key ≥ key, or ErrKeyNotFound.
func (t *BST[K, V]) Ceiling(key K) (K, error) { return ceiling(t.root, key) }

// Rank returns the number of keys strictly smaller than key.
// Complexity: O(h).
func (t *BST[K, V]) Rank(key K) int { return rank(t.root, key) }

// Select returns the key with the given rank (0-based in-order
// position). Returns ErrRankOutOfBounds for rank ∉ [0, Size).
// Complexity: O(h).
func (t *BST[K, V]) Select(k int) (K, error) { return selectKey(t.root, k) }

// Keys returns every key in ascending order. Complexity: O(n).
func (t *BST[K, V]) Keys() []K {
	keys := make([]K, 0, size(t.root))
	inorder(t.root, func(n *bstNode[K, V]) { keys = append(keys, n.key) })

	return keys
}

// RangeKeys returns the keys in [lo, hi] in ascending order.
// Complexity: O(h + r) for r keys reported.
func (t *BST[K, V]) RangeKeys(lo, hi K) []K {
	var keys []K
	rangeKeys(t.root, lo, hi, &keys)

	return keys
}

// InOrder calls fn for every key/value pair in ascending key order.
func (t *BST[K, V]) InOrder(fn func(key K, val V)) {
	inorder(t.root, func(n *bstNode[K, V]) { fn(n.key, n.val) })
}

// Delete removes key. Returns ErrKeyNotFound if absent. Uses Hibbard
// deletion: a two-child node is replaced by its in-order successor.
// Complexity: O(h).
func (t *BST[K, V]) Delete(key K) error {
	if !t.Contains(key) {
		return ErrKeyNotFound
	}
	t.root = bstDelete(t.root, key)

	return nil
}

// DeleteMin removes the smallest key. Returns ErrEmptyTree when empty.
func (t *BST[K, V]) DeleteMin() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	t.root = deleteMin(t.root)

	return nil
}

// DeleteMax removes the largest key. Returns ErrEmptyTree when empty.
func (t *BST[K, V]) DeleteMax() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	t.root = deleteMax(t.root)

	return nil
}

// --- recursive helpers (shared shapes with the AVL file live here) ---

func size[K cmp.Ordered, V any](x *bstNode[K, V]) int {
	if x == nil {
		return 0
	}

	return x.size
}

func height[K cmp.Ordered, V any](x *bstNode[K, V]) int {
	if x == nil {
		return -1
	}

	return 1 + max(height(x.left), height(x.right))
}

func bstPut[K cmp.Ordered, V any](x *bstNode[K, V], key K, val V) *bstNode[K, V] {
	if x == nil {
		return &bstNode[K, V]{key: key, val: val, size: 1}
	}
	switch {
	case key < x.key:
		x.left = bstPut(x.left, key, val)
	case key > x.key:
		x.right = bstPut(x.right, key, val)
	default:
		x.val = val

		return x
	}
	x.size = 1 + size(x.left) + size(x.right)

	return x
}

func minNode[K cmp.Ordered, V any](x *bstNode[K, V]) *bstNode[K, V] {
	for x.left != nil {
		x = x.left
	}

	return x
}

func floor[K cmp.Ordered, V any](x *bstNode[K, V], key K) (K, error) {
	var best K
	found := false
	for x != nil {
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

func ceiling[K cmp.Ordered, V any](x *bstNode[K, V], key K) (K, error) {
	var best K
	found := false
	for x != nil {
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

func rank[K cmp.Ordered, V any](x *bstNode[K, V], key K) int {
	r := 0
	for x != nil {
		switch {
		case key < x.key:
			x = x.left
		case key > x.key:
			r += 1 + size(x.left)
			x = x.right
		default:
			return r + size(x.left)
		}
	}

	return r
}

func selectKey[K cmp.Ordered, V any](x *bstNode[K, V], k int) (K, error) {
	if k < 0 || k >= size(x) {
		var zero K

		return zero, ErrRankOutOfBounds
	}
	for {
		ls := size(x.left)
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

func inorder[K cmp.Ordered, V any](x *bstNode[K, V], fn func(*bstNode[K, V])) {
	if x == nil {
		return
	}
	inorder(x.left, fn)
	fn(x)
	inorder(x.right, fn)
}

func rangeKeys[K cmp.Ordered, V any](x *bstNode[K, V], lo, hi K, out *[]K) {
	if x == nil {
		return
	}
	if lo < x.key {
		rangeKeys(x.left, lo, hi, out)
	}
	if lo <= x.key && x.key <= hi {
		*out = append(*out, x.key)
	}
	if hi > x.key {
		rangeKeys(x.right, lo, hi, out)
	}
}

func deleteMin[K cmp.Ordered, V any](x *bstNode[K, V]) *bstNode[K, V] {
	if x.left == nil {
		return x.right
	}
	x.left = deleteMin(x.left)
	x.size = 1 + size(x.left) + size(x.right)

	return x
}

func deleteMax[K cmp.Ordered, V any](x *bstNode[K, V]) *bstNode[K, V] {
	if x.right == nil {
		return x.left
	}
	x.right = deleteMax(x.right)
	x.size = 1 + size(x.left) + size(x.right)

	return x
}

func bstDelete[K cmp.Ordered, V any](x *bstNode[K, V], key K) *bstNode[K, V] {
	if x == nil {
		return nil
	}
	switch {
	case key < x.key:
		x.left = bstDelete(x.left, key)
	case key > x.key:
		x.right = bstDelete(x.right, key)
	default:
		if x.right == nil {
			return x.left
		}
		if x.left == nil {
			return x.right
		}
		// Two children: swap in the in-order successor.
		succ := minNode(x.right)
		x.key, x.val = succ.key, succ.val
		x.right = bstDelete(x.right, succ.key)
	}
	x.size = 1 + size(x.left) + size(x.right)

	return x
}
