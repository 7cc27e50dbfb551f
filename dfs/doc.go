// Package dfs implements the depth-first-search family over a
// core.Graph:
//
//   - DFS            : single-source or full-forest traversal with
//     preorder/postorder sequences and parent links
//   - Reachable      : multi-source reachability marking (the
//     workhorse behind transitive closure and NFA simulation)
//   - Cycle          : first cycle in a directed or undirected graph
//   - TopologicalSort: linear order of a DAG, error on cycles
//   - NewClosure     : all-pairs reachability via one DFS per vertex
//
// The core traversal is iterative - an explicit stack instead of
// recursion - so pathological path-shaped graphs cannot exhaust the
// goroutine stack. Neighbor exploration follows the sorted order from
// core, making every sequence deterministic.
//
// Complexity: each traversal is O(V + E); the closure is O(V·(V+E))
// time and O(V²) space.
package dfs
