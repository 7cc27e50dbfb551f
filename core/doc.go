// Package core provides the in-memory Graph type shared by every
// algorithm package in arbelos.
//
// A single configurable Graph stands in for the classic trio of
// representations - undirected graph, digraph, and edge-weighted
// digraph - selected through construction options:
//
//   - WithDirected(true)  : edges are one-way from→to
//   - WithWeighted()      : edges carry a float64 weight
//   - WithLoops()         : self-loops permitted
//   - WithMultiEdges()    : parallel edges permitted
//
// Storage is a nested adjacency index
//
//	adjacency[from][to][edgeID] = struct{}{}
//
// which gives O(1) edge insertion and lookup while supporting
// multigraphs. Undirected edges are mirrored under both endpoints.
// Edge IDs ("e1", "e2", ...) come from a monotone counter so parallel
// edges remain distinguishable.
//
// All accessors that enumerate graph state (Vertices, Edges,
// NeighborIDs) return sorted slices, so algorithms built on top of
// core produce deterministic results.
//
// A Graph is safe for concurrent use: a single sync.RWMutex guards
// vertices, edges, and adjacency together. The algorithm packages
// never spawn goroutines themselves; the locking only makes it safe
// to share one Graph value across callers.
package core
