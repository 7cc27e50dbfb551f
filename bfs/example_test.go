package bfs_test

import (
	"fmt"

	"github.com/arbelos/arbelos/bfs"
	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/gen"
)

// ExampleBFS demonstrates the frontier-by-frontier visit order on a
// 3x3 grid: the start first, then everything one edge away, and so on.
func ExampleBFS() {
	g, err := gen.Grid(3, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := bfs.BFS(g, "v0")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(res.Order)
	fmt.Println("corner-to-corner hops:", res.Dist["v8"])
	// Output:
	// [v0 v1 v3 v2 v4 v6 v5 v7 v8]
	// corner-to-corner hops: 4
}

// ExampleResult_PathTo picks the fewest-hop route when two routes
// compete: A-E-F-K (3 hops) beats A-B-C-D-K (4 hops).
func ExampleResult_PathTo() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "D", 0)
	g.AddEdge("D", "K", 0)
	g.AddEdge("A", "E", 0)
	g.AddEdge("E", "F", 0)
	g.AddEdge("F", "K", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}
