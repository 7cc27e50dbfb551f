// Package substr implements classic substring-search algorithms, each
// compiled once per pattern and reusable across texts:
//
//   - KMP        : Knuth-Morris-Pratt as a deterministic finite
//     automaton over bytes; guaranteed O(n) search, no backup in the
//     text, the right choice for streams
//   - BoyerMoore : the bad-character heuristic; sublinear on typical
//     inputs, O(n·m) pathological worst case
//   - RabinKarp  : Monte-Carlo-turned-Las-Vegas rolling hash, each
//     hash hit verified before being reported, so answers are always
//     exact
//
// All three expose the same surface: Index returns the first match
// offset or -1, IndexAll every (possibly overlapping) match offset in
// order. An empty pattern is rejected at construction.
package substr
