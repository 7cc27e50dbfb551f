package suffix

import (
	"fmt"
	"sort"
)

// Array is the suffix array of a text: index[i] is the start offset
// of the i-th smallest suffix. Immutable after construction.
type Array struct {
	text  string
	index []int
}

// New builds the suffix array of text.
// Complexity: O(n log n) comparisons.
func New(text string) *Array {
	a := &Array{text: text, index: make([]int, len(text))}
	for i := range a.index {
		a.index[i] = i
	}
	sort.Slice(a.index, func(i, j int) bool {
		return text[a.index[i]:] < text[a.index[j]:]
	})

	return a
}

// Len returns the text length, which equals the number of suffixes.
func (a *Array) Len() int { return len(a.index) }

// Text returns the underlying text.
func (a *Array) Text() string { return a.text }

// Index returns the text offset of the i-th smallest suffix.
// Panics when i is out of [0, Len).
func (a *Array) Index(i int) int {
	a.check(i, 0)

	return a.index[i]
}

// Select returns the i-th smallest suffix. The result shares the
// text's backing memory. Panics when i is out of [0, Len).
func (a *Array) Select(i int) string {
	a.check(i, 0)

	return a.text[a.index[i]:]
}

// LCP returns the length of the longest common prefix of the i-th
// and (i-1)-th smallest suffixes. Panics when i is out of [1, Len).
func (a *Array) LCP(i int) int {
	a.check(i, 1)

	return commonPrefix(a.text[a.index[i]:], a.text[a.index[i-1]:])
}

// Rank returns the number of suffixes strictly smaller than query,
// by binary search. Complexity: O(len(query) · log n).
func (a *Array) Rank(query string) int {
	return sort.Search(len(a.index), func(i int) bool {
		return a.text[a.index[i]:] >= query
	})
}

func (a *Array) check(i, lo int) {
	if i < lo || i >= len(a.index) {
		panic(fmt.Sprintf("suffix: index %d out of range [%d,%d)", i, lo, len(a.index)))
	}
}

// commonPrefix returns the length of the longest common prefix of s
// and t.
func commonPrefix(s, t string) int {
	n := len(s)
	if len(t) < n {
		n = len(t)
	}
	for i := 0; i < n; i++ {
		if s[i] != t[i] {
			return i
		}
	}

	return n
}

// LongestRepeatedSubstring returns the longest substring occurring at
// least twice in text; empty when no byte repeats. Two suffixes with
// the maximal LCP pinpoint it.
func LongestRepeatedSubstring(text string) string {
	a := New(text)
	best, at := 0, 0
	for i := 1; i < a.Len(); i++ {
		if l := a.LCP(i); l > best {
			best, at = l, a.index[i]
		}
	}

	return text[at : at+best]
}

// LongestCommonSubstring returns the longest string occurring in both
// s and t. The texts are joined with a zero byte so no suffix
// comparison crosses the boundary; inputs containing 0x00 are not
// supported.
func LongestCommonSubstring(s, t string) string {
	if s == "" || t == "" {
		return ""
	}
	joined := s + "\x00" + t
	a := New(joined)

	best, at := 0, 0
	for i := 1; i < a.Len(); i++ {
		p, q := a.index[i-1], a.index[i]
		// Only pairs straddling the separator witness a common substring.
		if (p < len(s)) == (q < len(s)) {
			continue
		}
		if l := a.LCP(i); l > best {
			best, at = l, q
		}
	}

	return joined[at : at+best]
}
