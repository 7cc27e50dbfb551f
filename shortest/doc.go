// Package shortest computes single-source shortest paths over a
// weighted core.Graph.
//
//   - Dijkstra    : non-negative weights, eager decrease-key on an
//     indexed min-heap, O((V+E) log V)
//   - BellmanFord : arbitrary weights, queue-based relaxation with
//     negative-cycle detection, O(V·E) worst case
//
// Both return a Result holding distance and parent maps; PathTo
// reconstructs an explicit path. Unreachable vertices carry a distance
// of +Inf and are absent from Parent.
//
// Dijkstra rejects graphs containing any negative edge up front, even
// on edges the search would never relax, because a silent wrong answer
// is worse than a refused one.
package shortest
