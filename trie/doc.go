// Package trie implements string-keyed symbol tables:
//
//   - Trie : a 256-way trie, one child pointer per byte value. The
//     fastest option when keys are short and memory is plentiful;
//     search touches at most len(key) nodes.
//   - TST  : a ternary search trie, three pointers per node. Slower
//     by a small constant but dramatically more compact for large
//     alphabets and sparse key sets.
//
// Both support the ordered operations that make tries worth having
// over a plain map: KeysWithPrefix, KeysMatching with the '.'
// wildcard, and LongestPrefixOf. Keys are non-empty byte strings;
// values are any type. All key listings come back sorted.
//
// Neither structure is safe for concurrent mutation.
package trie
