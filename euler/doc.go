// Package euler finds Eulerian paths and circuits, walks that use
// every edge of a graph exactly once, with Hierholzer's algorithm.
//
//   - Circuit / Path                 : undirected graphs
//   - DirectedCircuit / DirectedPath : directed graphs
//
// Existence is decided by the classic degree conditions (all degrees
// even for an undirected circuit, exactly two odd for a path; in =
// out everywhere for a directed circuit, one surplus and one deficit
// vertex for a path) plus connectivity of the non-isolated vertices.
//
// The walk is built iteratively with an explicit stack, appending
// vertices on retreat, so the result is linear in the edge count and
// immune to deep recursion. Complexity: O(V + E).
package euler
