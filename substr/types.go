// Package substr: sentinel errors and the shared searcher contract.
package substr

import "errors"

// ErrEmptyPattern is returned by the constructors for a zero-length
// pattern.
var ErrEmptyPattern = errors.New("substr: empty pattern")

// radix is the alphabet size: patterns and texts are byte strings.
const radix = 256

// Searcher finds occurrences of a fixed pattern in arbitrary texts.
type Searcher interface {
	// Pattern returns the compiled pattern.
	Pattern() string

	// Index returns the offset of the first occurrence in text, or -1.
	Index(text string) int

	// IndexAll returns every occurrence offset in increasing order,
	// including overlapping ones. Empty when there is no match.
	IndexAll(text string) []int
}

// indexAll implements IndexAll generically: repeated Index calls on
// shrinking suffixes, shifting by one past each hit so overlapping
// matches are found.
func indexAll(s Searcher, text string) []int {
	var out []int
	base := 0
	for {
		i := s.Index(text[base:])
		if i < 0 {
			return out
		}
		out = append(out, base+i)
		base += i + 1
		if base >= len(text) {
			return out
		}
	}
}
