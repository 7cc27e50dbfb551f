package mst_test

import (
	"fmt"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/mst"
)

// ExampleCompute builds the spanning tree of a small weighted square
// with one diagonal. The expensive edges C-D and the diagonal lose.
//
//	A ──1── B
//	│ ╲     │
//	4  5    2
//	│     ╲ │
//	C ──6── D
func ExampleCompute() {
	g := core.NewGraph(core.WithWeighted())
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "D", 2)
	g.AddEdge("A", "C", 4)
	g.AddEdge("A", "D", 5)
	g.AddEdge("C", "D", 6)

	for _, algo := range []mst.Algorithm{mst.Kruskal, mst.Prim} {
		res, err := mst.Compute(g, mst.WithAlgorithm(algo))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: weight %g\n", algo, res.Weight)
	}
	// Output:
	// kruskal: weight 7
	// prim: weight 7
}
