// Package bfs implements breadth-first search over a core.Graph.
//
// BFS visits vertices in increasing edge-count distance from the
// start vertex and yields, per reached vertex, its distance (Dist),
// its predecessor in the BFS tree (Parent), and the overall visit
// sequence (Order). Result.PathTo reconstructs a shortest unweighted
// path to any reached vertex.
//
// The traversal works on directed and undirected graphs alike and is
// tunable through functional options: cancellation context, depth
// limit, neighbor filtering, and a visit hook that can abort the
// search by returning an error.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
