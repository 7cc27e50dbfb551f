package trie

import "errors"

// ErrEmptyKey is returned when a key of length zero is supplied.
var ErrEmptyKey = errors.New("trie: empty key")

// radix is the alphabet size: one child per byte value.
const radix = 256

// trieNode is one level of the 256-way trie. val is meaningful only
// when set is true; the distinction lets callers store zero values.
type trieNode[V any] struct {
	val      V
	set      bool
	children [radix]*trieNode[V]
}

// Trie is a 256-way trie: a string symbol table supporting prefix and
// wildcard queries. The zero value is not usable; call NewTrie.
type Trie[V any] struct {
	root *trieNode[V]
	size int
}

// NewTrie returns an empty 256-way trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Size returns the number of stored keys. Complexity: O(1).
func (t *Trie[V]) Size() int { return t.size }

// IsEmpty reports whether the trie holds no keys.
func (t *Trie[V]) IsEmpty() bool { return t.size == 0 }

// Put stores val under key, replacing any previous value.
// Returns ErrEmptyKey for an empty key. Complexity: O(len(key)).
func (t *Trie[V]) Put(key string, val V) error {
	if key == "" {
		return ErrEmptyKey
	}
	if t.root == nil {
		t.root = &trieNode[V]{}
	}
	x := t.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		if x.children[c] == nil {
			x.children[c] = &trieNode[V]{}
		}
		x = x.children[c]
	}
	if !x.set {
		t.size++
	}
	x.val, x.set = val, true

	return nil
}

// Get returns the value stored under key and whether it exists.
// Complexity: O(len(key)).
func (t *Trie[V]) Get(key string) (V, bool) {
	var zero V
	x := t.locate(key)
	if x == nil || !x.set {
		return zero, false
	}

	return x.val, true
}

// Contains reports whether key is stored.
func (t *Trie[V]) Contains(key string) bool {
	x := t.locate(key)

	return x != nil && x.set
}

// Delete removes key and reports whether it was present. Nodes left
// without values or children are pruned. Complexity: O(len(key)).
func (t *Trie[V]) Delete(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	deleted := false
	t.root = trieDelete(t.root, key, 0, &deleted)
	if deleted {
		t.size--
	}

	return deleted, nil
}

// Keys returns every stored key in sorted order.
func (t *Trie[V]) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns the sorted keys beginning with prefix.
func (t *Trie[V]) KeysWithPrefix(prefix string) []string {
	var out []string
	collect(t.locate(prefix), []byte(prefix), &out)

	return out
}

// KeysMatching returns the sorted keys matching pattern, where each
// '.' matches exactly one arbitrary byte. Matches never exceed the
// pattern length.
func (t *Trie[V]) KeysMatching(pattern string) []string {
	var out []string
	collectMatch(t.root, nil, pattern, &out)

	return out
}

// LongestPrefixOf returns the longest stored key that is a prefix of
// query, and whether one exists. Complexity: O(len(query)).
func (t *Trie[V]) LongestPrefixOf(query string) (string, bool) {
	x := t.root
	best, found := 0, false
	for i := 0; ; i++ {
		if x == nil {
			break
		}
		if x.set {
			best, found = i, true
		}
		if i == len(query) {
			break
		}
		x = x.children[query[i]]
	}

	return query[:best], found
}

// locate walks to the node for key; nil when the path breaks off.
func (t *Trie[V]) locate(key string) *trieNode[V] {
	x := t.root
	for i := 0; i < len(key) && x != nil; i++ {
		x = x.children[key[i]]
	}

	return x
}

// trieDelete unsets key below x and prunes empty branches bottom-up.
func trieDelete[V any](x *trieNode[V], key string, d int, deleted *bool) *trieNode[V] {
	if x == nil {
		return nil
	}
	if d == len(key) {
		if x.set {
			var zero V
			x.val, x.set = zero, false
			*deleted = true
		}
	} else {
		c := key[d]
		x.children[c] = trieDelete(x.children[c], key, d+1, deleted)
	}

	if x.set {
		return x
	}
	for _, child := range x.children {
		if child != nil {
			return x
		}
	}

	return nil
}

// collect appends every key under x, prefix included, in byte order.
func collect[V any](x *trieNode[V], prefix []byte, out *[]string) {
	if x == nil {
		return
	}
	if x.set {
		*out = append(*out, string(prefix))
	}
	for c, child := range x.children {
		if child != nil {
			collect(child, append(prefix, byte(c)), out)
		}
	}
}

// collectMatch appends keys matching the rest of pattern below x.
func collectMatch[V any](x *trieNode[V], prefix []byte, pattern string, out *[]string) {
	if x == nil {
		return
	}
	d := len(prefix)
	if d == len(pattern) {
		if x.set {
			*out = append(*out, string(prefix))
		}

		return
	}
	if c := pattern[d]; c == '.' {
		for b, child := range x.children {
			if child != nil {
				collectMatch(child, append(prefix, byte(b)), pattern, out)
			}
		}
	} else {
		collectMatch(x.children[c], append(prefix, c), pattern, out)
	}
}
