package substr

// q is a large prime for the rolling hash (the Mersenne prime 2³¹-1);
// radix*q fits comfortably in 64 bits.
const q = 2_147_483_647

// RabinKarp searches by rolling hash: text windows are hashed in O(1)
// amortized per position and compared against the pattern hash. Every
// hash hit is verified byte-by-byte (the Las Vegas variant), so a
// collision costs time but never correctness.
type RabinKarp struct {
	pattern string
	hash    uint64 // pattern hash mod q
	rm      uint64 // radix^(m-1) mod q, for leading-byte removal
}

// NewRabinKarp compiles pattern. Returns ErrEmptyPattern for an empty
// pattern.
func NewRabinKarp(pattern string) (*RabinKarp, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}
	r := &RabinKarp{pattern: pattern, rm: 1}
	for i := 1; i < len(pattern); i++ {
		r.rm = r.rm * radix % q
	}
	r.hash = hash(pattern, len(pattern))

	return r, nil
}

// Pattern returns the compiled pattern.
func (r *RabinKarp) Pattern() string { return r.pattern }

// Index returns the offset of the first occurrence of the pattern in
// text, or -1. Complexity: O(len(text)) expected.
func (r *RabinKarp) Index(text string) int {
	n, m := len(text), len(r.pattern)
	if n < m {
		return -1
	}

	h := hash(text, m)
	if h == r.hash && text[:m] == r.pattern {
		return 0
	}
	for i := m; i < n; i++ {
		// Roll: drop text[i-m], add text[i].
		h = (h + q - r.rm*uint64(text[i-m])%q) % q
		h = (h*radix + uint64(text[i])) % q
		if pos := i - m + 1; h == r.hash && text[pos:pos+m] == r.pattern {
			return pos
		}
	}

	return -1
}

// IndexAll returns every occurrence offset, overlapping included.
func (r *RabinKarp) IndexAll(text string) []int {
	return indexAll(r, text)
}

// hash computes the Horner hash of s[:m] mod q.
func hash(s string, m int) uint64 {
	var h uint64
	for i := 0; i < m; i++ {
		h = (h*radix + uint64(s[i])) % q
	}

	return h
}
