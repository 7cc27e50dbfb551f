// Package suffix builds suffix arrays and answers the string
// questions they make cheap.
//
// A suffix array is the lexicographic ordering of every suffix of a
// text, stored as start indices over the shared string, so the whole
// structure costs O(n) integers on top of the text itself. On top of
// it:
//
//   - Rank   : where a query string falls among the suffixes, by
//     binary search
//   - LCP    : longest common prefix between lexicographic neighbors
//   - LongestRepeatedSubstring : the maximum LCP entry
//   - LongestCommonSubstring   : LRS over two texts joined by a
//     separator byte
//
// Construction sorts index slices with the standard library sort,
// O(n log n) comparisons of O(n) cost each in the adversarial case,
// linear-ish on ordinary text. The fancy linear-time constructions
// are not worth their complexity at this library's scale.
package suffix
