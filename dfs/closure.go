package dfs

import (
	"fmt"
	"sort"

	"github.com/arbelos/arbelos/core"
)

// Closure is the transitive closure of a digraph: an all-pairs
// reachability index answering Reachable(v, w) in O(1).
//
// Construction runs one DFS per vertex, O(V·(V+E)) time and O(V²)
// space, which is the practical choice for the modest graphs this
// library targets; the index is immutable after construction.
type Closure struct {
	reach map[string]map[string]bool
}

// NewClosure builds the transitive closure of g.
// Returns ErrGraphNil for nil input and ErrNotDirected for
// undirected graphs (where plain connectivity answers the question).
func NewClosure(g *core.Graph) (*Closure, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	vertices := g.Vertices()
	reach := make(map[string]map[string]bool, len(vertices))
	for _, v := range vertices {
		marked, err := Reachable(g, v)
		if err != nil {
			return nil, fmt.Errorf("dfs: closure from %q: %w", v, err)
		}
		reach[v] = marked
	}

	return &Closure{reach: reach}, nil
}

// Reachable reports whether w is reachable from v over directed
// paths. Every vertex reaches itself. Unknown vertices are reachable
// from nothing and reach nothing.
func (c *Closure) Reachable(v, w string) bool {
	return c.reach[v][w]
}

// ReachableSet returns the sorted set of vertices reachable from v,
// including v itself; nil for unknown v.
func (c *Closure) ReachableSet(v string) []string {
	marked, ok := c.reach[v]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(marked))
	for id := range marked {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
