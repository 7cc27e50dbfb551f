package unionfind

import "errors"

// ErrUnknownElement indicates a query for an element never added.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// UnionFind maintains a partition of string elements into disjoint
// sets. Not safe for concurrent use.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	count  int // number of disjoint sets
}

// New creates a UnionFind holding the given elements, each in its own
// singleton set. Complexity: O(n).
func New(elements ...string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(elements)),
		rank:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		uf.Add(e)
	}

	return uf
}

// Add registers e as a singleton set. Adding a known element is a no-op.
// Complexity: O(1).
func (uf *UnionFind) Add(e string) {
	if _, ok := uf.parent[e]; ok {
		return
	}
	uf.parent[e] = e
	uf.rank[e] = 0
	uf.count++
}

// Contains reports whether e has been added.
func (uf *UnionFind) Contains(e string) bool {
	_, ok := uf.parent[e]

	return ok
}

// Find returns the canonical representative of e's set, applying path
// halving along the way. Returns ErrUnknownElement for unknown e.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(e string) (string, error) {
	if _, ok := uf.parent[e]; !ok {
		return "", ErrUnknownElement
	}
	for uf.parent[e] != e {
		uf.parent[e] = uf.parent[uf.parent[e]] // point to grandparent
		e = uf.parent[e]
	}

	return e, nil
}

// Union merges the sets containing a and b, by rank. It reports
// whether a merge happened (false when already connected).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(a, b string) (bool, error) {
	ra, err := uf.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		return false, nil
	}

	// Attach the shallower tree under the deeper root.
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.count--

	return true, nil
}

// Connected reports whether a and b are in the same set. Unknown
// elements are never connected.
func (uf *UnionFind) Connected(a, b string) bool {
	ra, err := uf.Find(a)
	if err != nil {
		return false
	}
	rb, err := uf.Find(b)
	if err != nil {
		return false
	}

	return ra == rb
}

// Count returns the current number of disjoint sets. Complexity: O(1).
func (uf *UnionFind) Count() int { return uf.count }

// Len returns the number of elements. Complexity: O(1).
func (uf *UnionFind) Len() int { return len(uf.parent) }
