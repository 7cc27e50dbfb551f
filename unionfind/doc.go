// Package unionfind implements a disjoint-set (union-find) structure
// over string IDs, matching the vertex IDs used by core.Graph.
//
// The implementation uses union by rank and path halving, giving
// near-constant amortized time per operation: any sequence of m
// operations on n elements runs in O(m α(n)), where α is the inverse
// Ackermann function.
//
// Typical use is cycle avoidance in Kruskal's minimum-spanning-tree
// algorithm and connectivity queries:
//
//	uf := unionfind.New("A", "B", "C")
//	uf.Union("A", "B")
//	uf.Connected("A", "B") // true
//	uf.Count()             // 2 components
package unionfind
