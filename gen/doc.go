// Package gen builds the standard graph families used in examples,
// tests, and benchmarks: paths, cycles, complete graphs, grids,
// complete bipartite graphs, and seeded sparse random graphs.
//
// Vertex IDs are zero-padded ("v00", "v01", ...) so the sorted order
// every algorithm in this module iterates in matches construction
// order. Generators are deterministic: the same parameters and seed
// always produce the same graph, weights included.
package gen
