package substr

// KMP is a Knuth-Morris-Pratt searcher. The pattern is compiled into
// a byte-indexed DFA; searching reads each text byte exactly once and
// never backs up, which makes the searcher suitable for data that can
// only be scanned forward.
type KMP struct {
	pattern string
	dfa     [radix][]int
}

// NewKMP compiles pattern into a DFA. Construction is O(m·256) time
// and space; search is O(n). Returns ErrEmptyPattern for an empty
// pattern.
func NewKMP(pattern string) (*KMP, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	m := len(pattern)
	k := &KMP{pattern: pattern}
	for c := range k.dfa {
		k.dfa[c] = make([]int, m)
	}

	k.dfa[pattern[0]][0] = 1
	for x, j := 0, 1; j < m; j++ {
		for c := 0; c < radix; c++ {
			k.dfa[c][j] = k.dfa[c][x] // mismatch: as if restarted at x
		}
		k.dfa[pattern[j]][j] = j + 1
		x = k.dfa[pattern[j]][x]
	}

	return k, nil
}

// Pattern returns the compiled pattern.
func (k *KMP) Pattern() string { return k.pattern }

// Index returns the offset of the first occurrence of the pattern in
// text, or -1. Complexity: O(len(text)).
func (k *KMP) Index(text string) int {
	m := len(k.pattern)
	j := 0
	for i := 0; i < len(text); i++ {
		j = k.dfa[text[i]][j]
		if j == m {
			return i - m + 1
		}
	}

	return -1
}

// IndexAll returns every occurrence offset, overlapping included.
func (k *KMP) IndexAll(text string) []int {
	return indexAll(k, text)
}
