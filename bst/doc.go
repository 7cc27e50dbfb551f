// Package bst provides ordered symbol tables keyed by any ordered
// type: a plain binary search tree (BST) and a height-balanced AVL
// variant with the same surface.
//
// Both support the full ordered-map repertoire: Put, Get, Delete,
// Min/Max, Floor/Ceiling, Rank/Select, and ordered key iteration over
// the whole table or a key range. Subtree sizes are maintained on
// every node, so Rank and Select run in one root-to-leaf walk.
//
// BST operations cost O(h) where h is the tree height - O(log n) on
// random insertion orders but O(n) in the worst case. AVL maintains
// the height-balance invariant (subtree heights differ by at most
// one) with rotations, guaranteeing h ≤ 1.44·log₂(n) and therefore
// O(log n) worst-case operations.
//
// Neither type is safe for concurrent use.
package bst
