// Package mst computes minimum spanning trees of connected, weighted,
// undirected graphs.
//
//   - Kruskal : sorts edges by weight and grows a forest guarded by a
//     union-find, O(E log E)
//   - Prim    : grows a single tree from a root with an indexed
//     min-heap keyed by the lightest crossing edge, O(E log V)
//
// Compute is the front door: it validates the graph once and
// dispatches on the WithAlgorithm option (Kruskal by default). Both
// algorithms return the same tree weight; with distinct edge weights
// they return the identical tree.
//
// A disconnected graph has no spanning tree; both algorithms report
// ErrDisconnected rather than silently returning a spanning forest.
package mst
