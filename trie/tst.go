package trie

// tstNode is one node of a ternary search trie: a byte, a value slot,
// and three subtrees for smaller, equal (next byte), and larger keys.
type tstNode[V any] struct {
	c                byte
	val              V
	set              bool
	left, mid, right *tstNode[V]
}

// TST is a ternary search trie: the space-frugal alternative to Trie
// with the same query surface. The zero value is not usable; call
// NewTST.
type TST[V any] struct {
	root *tstNode[V]
	size int
}

// NewTST returns an empty ternary search trie.
func NewTST[V any]() *TST[V] {
	return &TST[V]{}
}

// Size returns the number of stored keys. Complexity: O(1).
func (t *TST[V]) Size() int { return t.size }

// IsEmpty reports whether the trie holds no keys.
func (t *TST[V]) IsEmpty() bool { return t.size == 0 }

// Put stores val under key, replacing any previous value.
// Returns ErrEmptyKey for an empty key.
// Complexity: O(len(key) + log n) expected.
func (t *TST[V]) Put(key string, val V) error {
	if key == "" {
		return ErrEmptyKey
	}
	t.root = t.put(t.root, key, val, 0)

	return nil
}

func (t *TST[V]) put(x *tstNode[V], key string, val V, d int) *tstNode[V] {
	c := key[d]
	if x == nil {
		x = &tstNode[V]{c: c}
	}
	switch {
	case c < x.c:
		x.left = t.put(x.left, key, val, d)
	case c > x.c:
		x.right = t.put(x.right, key, val, d)
	case d < len(key)-1:
		x.mid = t.put(x.mid, key, val, d+1)
	default:
		if !x.set {
			t.size++
		}
		x.val, x.set = val, true
	}

	return x
}

// Get returns the value stored under key and whether it exists.
func (t *TST[V]) Get(key string) (V, bool) {
	var zero V
	if key == "" {
		return zero, false
	}
	x := tstLocate(t.root, key, 0)
	if x == nil || !x.set {
		return zero, false
	}

	return x.val, true
}

// Contains reports whether key is stored.
func (t *TST[V]) Contains(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// Delete removes key and reports whether it was present. The node is
// unset; structural pruning is skipped, matching the classic
// formulation where deletions are rare.
func (t *TST[V]) Delete(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	x := tstLocate(t.root, key, 0)
	if x == nil || !x.set {
		return false, nil
	}
	var zero V
	x.val, x.set = zero, false
	t.size--

	return true, nil
}

// Keys returns every stored key in sorted order.
func (t *TST[V]) Keys() []string {
	var out []string
	tstCollect(t.root, nil, &out)

	return out
}

// KeysWithPrefix returns the sorted keys beginning with prefix.
func (t *TST[V]) KeysWithPrefix(prefix string) []string {
	if prefix == "" {
		return t.Keys()
	}
	x := tstLocate(t.root, prefix, 0)
	if x == nil {
		return nil
	}
	var out []string
	if x.set {
		out = append(out, prefix)
	}
	tstCollect(x.mid, []byte(prefix), &out)

	return out
}

// KeysMatching returns the sorted keys matching pattern, where each
// '.' matches exactly one arbitrary byte.
func (t *TST[V]) KeysMatching(pattern string) []string {
	if pattern == "" {
		return nil
	}
	var out []string
	tstMatch(t.root, nil, pattern, &out)

	return out
}

// LongestPrefixOf returns the longest stored key that is a prefix of
// query, and whether one exists.
func (t *TST[V]) LongestPrefixOf(query string) (string, bool) {
	best, found := 0, false
	x := t.root
	i := 0
	for x != nil && i < len(query) {
		switch c := query[i]; {
		case c < x.c:
			x = x.left
		case c > x.c:
			x = x.right
		default:
			i++
			if x.set {
				best, found = i, true
			}
			x = x.mid
		}
	}

	return query[:best], found
}

// tstLocate returns the node terminating key, nil when absent.
func tstLocate[V any](x *tstNode[V], key string, d int) *tstNode[V] {
	for x != nil {
		switch c := key[d]; {
		case c < x.c:
			x = x.left
		case c > x.c:
			x = x.right
		case d < len(key)-1:
			x = x.mid
			d++
		default:
			return x
		}
	}

	return nil
}

// tstCollect appends every key below x in sorted order; prefix holds
// the bytes on the path down to x's parent.
func tstCollect[V any](x *tstNode[V], prefix []byte, out *[]string) {
	if x == nil {
		return
	}
	tstCollect(x.left, prefix, out)
	if x.set {
		*out = append(*out, string(prefix)+string(x.c))
	}
	tstCollect(x.mid, append(prefix, x.c), out)
	tstCollect(x.right, prefix, out)
}

// tstMatch appends keys matching pattern below x; '.' matches any byte.
func tstMatch[V any](x *tstNode[V], prefix []byte, pattern string, out *[]string) {
	if x == nil {
		return
	}
	d := len(prefix)
	c := pattern[d]

	if c == '.' || c < x.c {
		tstMatch(x.left, prefix, pattern, out)
	}
	if c == '.' || c == x.c {
		if d == len(pattern)-1 && x.set {
			*out = append(*out, string(prefix)+string(x.c))
		}
		if d < len(pattern)-1 {
			tstMatch(x.mid, append(prefix, x.c), pattern, out)
		}
	}
	if c == '.' || c > x.c {
		tstMatch(x.right, prefix, pattern, out)
	}
}
