package matching

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/arbelos/arbelos/core"
)

// Bipartition two-colors g by breadth-first search, component by
// component in sorted vertex order.
//
// On success the Coloring's Color map is a valid two-coloring. If any
// edge joins two equally colored vertices, the graph contains an odd
// cycle: the call returns ErrOddCycle and the Coloring carries the
// cycle in OddCycle as a certificate.
//
// Self-loops are odd cycles of length one. Complexity: O(V + E).
func Bipartition(g *core.Graph) (*Coloring, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrNotUndirected
	}

	col := &Coloring{Color: make(map[string]bool, g.VertexCount())}
	parent := make(map[string]string)
	seen := make(map[string]bool, g.VertexCount())

	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		seen[root] = true
		col.Color[root] = false
		queue := linkedlistqueue.New()
		queue.Enqueue(root)

		for !queue.Empty() {
			front, _ := queue.Dequeue()
			v := front.(string)
			nbrs, err := g.NeighborIDs(v)
			if err != nil {
				return nil, fmt.Errorf("matching: neighbors of %q: %w", v, err)
			}
			for _, w := range nbrs {
				if w == v {
					col.OddCycle = []string{v, v}

					return col, ErrOddCycle
				}
				if !seen[w] {
					seen[w] = true
					col.Color[w] = !col.Color[v]
					parent[w] = v
					queue.Enqueue(w)

					continue
				}
				if col.Color[w] == col.Color[v] {
					col.OddCycle = oddCycleWitness(parent, v, w)

					return col, ErrOddCycle
				}
			}
		}
	}

	return col, nil
}

// oddCycleWitness builds the closed cycle through the offending edge
// v-w from BFS parent links: both tails are walked up to the lowest
// common ancestor and stitched together.
func oddCycleWitness(parent map[string]string, v, w string) []string {
	// Depth of each endpoint via parent chain length.
	depth := func(x string) int {
		d := 0
		for {
			p, ok := parent[x]
			if !ok {
				return d
			}
			x = p
			d++
		}
	}

	pathV := []string{v}
	pathW := []string{w}
	dv, dw := depth(v), depth(w)
	for dv > dw {
		v = parent[v]
		pathV = append(pathV, v)
		dv--
	}
	for dw > dv {
		w = parent[w]
		pathW = append(pathW, w)
		dw--
	}
	for v != w {
		v, w = parent[v], parent[w]
		pathV = append(pathV, v)
		pathW = append(pathW, w)
	}

	// pathV ends at the LCA; walk pathW back down, skipping its LCA copy.
	cycle := pathV
	for i := len(pathW) - 2; i >= 0; i-- {
		cycle = append(cycle, pathW[i])
	}

	return append(cycle, cycle[0])
}
