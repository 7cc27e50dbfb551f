// Package matching bundles bipartite-graph algorithms:
//
//   - Bipartition : two-colors an undirected graph by BFS, or reports
//     an odd cycle as the certificate of impossibility
//   - MaxMatching : maximum-cardinality matching via Hopcroft-Karp
//     (phased BFS layering plus DFS augmentation), O(E·sqrt(V))
//   - Hungarian   : minimum-cost perfect assignment on a dense square
//     cost matrix, the O(n³) potentials formulation
//
// Graph-shaped inputs work on a core.Graph; the assignment problem
// takes a linalg.Dense cost matrix because its natural input is dense.
package matching
