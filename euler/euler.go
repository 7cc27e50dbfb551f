package euler

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/arbelos/arbelos/core"
)

// Circuit returns a closed walk through an undirected graph that uses
// every edge exactly once and ends where it started.
//
// Exists iff every vertex has even degree and the edges form one
// component. An edgeless graph yields an empty walk.
func Circuit(g *core.Graph) ([]string, error) {
	odd, err := oddVertices(g)
	if err != nil {
		return nil, err
	}
	if len(odd) != 0 {
		return nil, fmt.Errorf("%w: %d vertices of odd degree", ErrNoEulerianCircuit, len(odd))
	}

	return tour(g, firstActive(g))
}

// Path returns a walk through an undirected graph that uses every
// edge exactly once. It starts and ends at the two odd-degree
// vertices when they exist, otherwise it is a circuit.
func Path(g *core.Graph) ([]string, error) {
	odd, err := oddVertices(g)
	if err != nil {
		return nil, err
	}
	start := ""
	switch len(odd) {
	case 0:
		start = firstActive(g)
	case 2:
		start = odd[0]
	default:
		return nil, fmt.Errorf("%w: %d vertices of odd degree", ErrNoEulerianPath, len(odd))
	}

	return tour(g, start)
}

// DirectedCircuit returns a closed walk through a digraph that uses
// every edge exactly once.
//
// Exists iff in-degree equals out-degree at every vertex and the
// edges form one component.
func DirectedCircuit(g *core.Graph) ([]string, error) {
	bal, err := balance(g)
	if err != nil {
		return nil, err
	}
	for v, d := range bal {
		if d != 0 {
			return nil, fmt.Errorf("%w: vertex %q is unbalanced", ErrNoEulerianCircuit, v)
		}
	}

	return tour(g, firstActive(g))
}

// DirectedPath returns a walk through a digraph that uses every edge
// exactly once. At most one vertex may have one more outgoing than
// incoming edge (the start) and at most one the reverse (the end).
func DirectedPath(g *core.Graph) ([]string, error) {
	bal, err := balance(g)
	if err != nil {
		return nil, err
	}
	start, end := "", ""
	for v, d := range bal {
		switch {
		case d == 1 && start == "":
			start = v
		case d == -1 && end == "":
			end = v
		case d != 0:
			return nil, fmt.Errorf("%w: vertex %q is unbalanced by %d", ErrNoEulerianPath, v, d)
		}
	}
	if (start == "") != (end == "") {
		return nil, fmt.Errorf("%w: surplus and deficit vertices must pair up", ErrNoEulerianPath)
	}
	if start == "" {
		start = firstActive(g)
	}

	return tour(g, start)
}

// tour runs Hierholzer's algorithm from start: follow unused edges
// greedily, appending each vertex when its edges are exhausted. The
// reversed retreat order is the Euler walk.
func tour(g *core.Graph, start string) ([]string, error) {
	if g.EdgeCount() == 0 {
		return []string{}, nil
	}

	adj := make(map[string][]core.Edge, g.VertexCount())
	next := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("euler: neighbors of %q: %w", v, err)
		}
		adj[v] = edges
	}

	used := make(map[string]bool, g.EdgeCount())
	stack := arraystack.New()
	stack.Push(start)
	var rev []string

	for !stack.Empty() {
		top, _ := stack.Peek()
		v := top.(string)

		advanced := false
		for next[v] < len(adj[v]) {
			e := adj[v][next[v]]
			next[v]++
			if used[e.ID] {
				continue
			}
			used[e.ID] = true
			stack.Push(e.Other(v))
			advanced = true

			break
		}
		if advanced {
			continue
		}
		stack.Pop()
		rev = append(rev, v)
	}

	if len(rev) != g.EdgeCount()+1 {
		return nil, ErrDisconnected
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// oddVertices validates an undirected graph and returns its
// odd-degree vertices in sorted order.
func oddVertices(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrNotUndirected
	}

	var odd []string
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("euler: degree of %q: %w", v, err)
		}
		if d%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd, nil
}

// balance validates a digraph and returns out-degree minus in-degree
// per vertex, computed in one pass over the edges.
func balance(g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	bal := make(map[string]int, g.VertexCount())
	for _, e := range g.Edges() {
		bal[e.From]++
		bal[e.To]--
	}

	return bal, nil
}

// firstActive returns the sorted-first vertex with at least one
// incident edge, or the empty string for an edgeless graph.
func firstActive(g *core.Graph) string {
	for _, v := range g.Vertices() {
		if nbrs, err := g.NeighborIDs(v); err == nil && len(nbrs) > 0 {
			return v
		}
	}

	return ""
}
