package pq

import "cmp"

// entry pairs an item ID with its priority key.
type entry[K cmp.Ordered] struct {
	id  string
	key K
}

// indexed is the shared machinery behind IndexMin and IndexMax:
// a binary heap of (id, key) entries plus a position map so that
// Update and Remove locate items in O(1).
//
// Invariant: pos[heap[i].id] == i for every i.
type indexed[K cmp.Ordered] struct {
	heap []entry[K]
	pos  map[string]int
	less func(a, b K) bool // heap direction
}

func newIndexed[K cmp.Ordered](less func(a, b K) bool) indexed[K] {
	return indexed[K]{pos: make(map[string]int), less: less}
}

// Len returns the number of queued items. Complexity: O(1).
func (x *indexed[K]) Len() int { return len(x.heap) }

// Empty reports whether no items are queued.
func (x *indexed[K]) Empty() bool { return len(x.heap) == 0 }

// Contains reports whether id is queued.
func (x *indexed[K]) Contains(id string) bool {
	_, ok := x.pos[id]

	return ok
}

// KeyOf returns the current key of id.
func (x *indexed[K]) KeyOf(id string) (K, error) {
	var zero K
	i, ok := x.pos[id]
	if !ok {
		return zero, ErrItemNotFound
	}

	return x.heap[i].key, nil
}

// Insert queues id with the given key. Complexity: O(log n).
func (x *indexed[K]) Insert(id string, key K) error {
	if _, ok := x.pos[id]; ok {
		return ErrDuplicateItem
	}
	x.heap = append(x.heap, entry[K]{id: id, key: key})
	x.pos[id] = len(x.heap) - 1
	x.swim(len(x.heap) - 1)

	return nil
}

// Update re-keys id. The new key must improve the item's priority
// (move it toward the top); otherwise ErrKeyOrder is returned and the
// heap is unchanged. Complexity: O(log n).
func (x *indexed[K]) Update(id string, key K) error {
	i, ok := x.pos[id]
	if !ok {
		return ErrItemNotFound
	}
	if !x.less(key, x.heap[i].key) {
		return ErrKeyOrder
	}
	x.heap[i].key = key
	x.swim(i)

	return nil
}

// Peek returns the top (id, key) without removing it.
func (x *indexed[K]) Peek() (string, K, error) {
	var zero K
	if len(x.heap) == 0 {
		return "", zero, ErrEmptyHeap
	}

	return x.heap[0].id, x.heap[0].key, nil
}

// Pop removes and returns the top (id, key). Complexity: O(log n).
func (x *indexed[K]) Pop() (string, K, error) {
	var zero K
	if len(x.heap) == 0 {
		return "", zero, ErrEmptyHeap
	}
	top := x.heap[0]
	x.removeAt(0)

	return top.id, top.key, nil
}

// Remove deletes id from the queue. Complexity: O(log n).
func (x *indexed[K]) Remove(id string) error {
	i, ok := x.pos[id]
	if !ok {
		return ErrItemNotFound
	}
	x.removeAt(i)

	return nil
}

// removeAt deletes the entry at index i, patching the hole with the
// last entry and re-sifting in whichever direction is needed.
func (x *indexed[K]) removeAt(i int) {
	last := len(x.heap) - 1
	delete(x.pos, x.heap[i].id)
	if i != last {
		x.heap[i] = x.heap[last]
		x.pos[x.heap[i].id] = i
	}
	x.heap = x.heap[:last]
	if i < last {
		if !x.sink(i) {
			x.swim(i)
		}
	}
}

func (x *indexed[K]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !x.less(x.heap[i].key, x.heap[parent].key) {
			break
		}
		x.swap(i, parent)
		i = parent
	}
}

// sink reports whether the entry moved.
func (x *indexed[K]) sink(i int) bool {
	start, n := i, len(x.heap)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && x.less(x.heap[right].key, x.heap[left].key) {
			child = right
		}
		if !x.less(x.heap[child].key, x.heap[i].key) {
			break
		}
		x.swap(i, child)
		i = child
	}

	return i > start
}

func (x *indexed[K]) swap(i, j int) {
	x.heap[i], x.heap[j] = x.heap[j], x.heap[i]
	x.pos[x.heap[i].id] = i
	x.pos[x.heap[j].id] = j
}

// IndexMin is an indexed min-heap: Pop yields the smallest key and
// Update performs decrease-key.
type IndexMin[K cmp.Ordered] struct{ indexed[K] }

// NewIndexMin returns an empty indexed min-heap.
func NewIndexMin[K cmp.Ordered]() *IndexMin[K] {
	return &IndexMin[K]{newIndexed(func(a, b K) bool { return a < b })}
}

// IndexMax is an indexed max-heap: Pop yields the largest key and
// Update performs increase-key.
type IndexMax[K cmp.Ordered] struct{ indexed[K] }

// NewIndexMax returns an empty indexed max-heap.
func NewIndexMax[K cmp.Ordered]() *IndexMax[K] {
	return &IndexMax[K]{newIndexed(func(a, b K) bool { return a > b })}
}
