// Package arbelos is a library of the classic algorithms and data
// structures, organized as small, independent packages that share one
// graph type and one set of conventions.
//
// What's inside:
//
//	core/      - the configurable Graph: directed/weighted/loops/multi-edges, thread-safe
//	bfs/, dfs/ - traversals: orders, parents, cycles, topological sort, transitive closure
//	shortest/  - Dijkstra and Bellman-Ford (negative-cycle certificates)
//	mst/       - Kruskal and Prim behind one Compute front door
//	matching/  - bipartition, Hopcroft-Karp matching, Hungarian assignment
//	euler/     - Eulerian paths and circuits, both orientations
//	unionfind/ - disjoint sets with path halving and union by rank
//	pq/        - binary, indexed, binomial and Fibonacci heaps
//	sorting/   - shellsort, mergesort, quicksort variants, binary search
//	bst/       - plain and AVL-balanced ordered symbol tables
//	trie/      - 256-way trie and ternary search trie with prefix/wildcard queries
//	substr/    - Knuth-Morris-Pratt, Boyer-Moore, Rabin-Karp
//	suffix/    - suffix arrays, longest repeated/common substring
//	nfa/       - regular expressions by NFA simulation
//	linalg/    - dense matrices, Gaussian and Gauss-Jordan elimination
//	gen/       - deterministic graph generators for tests and benchmarks
//
// Shared conventions:
//
//   - Sentinel errors per package, wrapped with %w; check with errors.Is
//   - Functional options with DefaultOptions; WithContext on long runs
//   - Deterministic iteration: vertex and edge listings are sorted, so
//     every algorithm's output is reproducible
//   - No goroutines, no I/O, no logging: results travel through return
//     values
//
//	go get github.com/arbelos/arbelos
package arbelos
