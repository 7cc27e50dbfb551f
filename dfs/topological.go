package dfs

import (
	"fmt"

	"github.com/arbelos/arbelos/core"
)

// TopologicalSort returns a linear ordering of the vertices of a
// directed acyclic graph such that every edge u→v places u before v.
//
// Returns ErrGraphNil for nil input, ErrNotDirected for undirected
// graphs, and ErrCycle when no ordering exists. The result is
// deterministic: ties resolve by sorted vertex order.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// A topological order is the reverse postorder of a full DFS,
	// valid only when the graph is acyclic.
	if _, found, err := Cycle(g); err != nil {
		return nil, err
	} else if found {
		return nil, ErrCycle
	}

	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, fmt.Errorf("dfs: topological sort: %w", err)
	}

	order := res.Postorder
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
