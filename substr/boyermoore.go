package substr

// BoyerMoore searches right to left under the bad-character
// heuristic: on a mismatch the pattern jumps past the text byte's
// rightmost occurrence in the pattern. Typical texts are scanned in
// sublinear time; the worst case degrades to O(n·m).
type BoyerMoore struct {
	pattern string
	right   [radix]int // rightmost index of each byte in pattern, -1 if absent
}

// NewBoyerMoore compiles pattern. Returns ErrEmptyPattern for an
// empty pattern.
func NewBoyerMoore(pattern string) (*BoyerMoore, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	b := &BoyerMoore{pattern: pattern}
	for c := range b.right {
		b.right[c] = -1
	}
	for i := 0; i < len(pattern); i++ {
		b.right[pattern[i]] = i
	}

	return b, nil
}

// Pattern returns the compiled pattern.
func (b *BoyerMoore) Pattern() string { return b.pattern }

// Index returns the offset of the first occurrence of the pattern in
// text, or -1.
func (b *BoyerMoore) Index(text string) int {
	n, m := len(text), len(b.pattern)
	for i := 0; i <= n-m; {
		skip := 0
		for j := m - 1; j >= 0; j-- {
			if b.pattern[j] != text[i+j] {
				skip = j - b.right[text[i+j]]
				if skip < 1 {
					skip = 1
				}

				break
			}
		}
		if skip == 0 {
			return i
		}
		i += skip
	}

	return -1
}

// IndexAll returns every occurrence offset, overlapping included.
func (b *BoyerMoore) IndexAll(text string) []int {
	return indexAll(b, text)
}
