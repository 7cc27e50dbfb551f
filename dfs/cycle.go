package dfs

import (
	"fmt"

	"github.com/arbelos/arbelos/core"
)

// Vertex colors for directed cycle detection.
const (
	white = iota // undiscovered
	gray         // on the current DFS path
	black        // fully explored
)

// Cycle searches g for a cycle and, when one exists, returns it as a
// closed vertex sequence (first element repeated last). The boolean
// reports whether a cycle was found.
//
// Directed graphs use three-color DFS (a gray→gray edge closes a
// cycle). Undirected graphs use parent-skipping DFS, with self-loops
// and parallel edges counting as cycles of length one and two.
// Complexity: O(V + E).
func Cycle(g *core.Graph) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if g.Directed() {
		return directedCycle(g)
	}

	return undirectedCycle(g)
}

// directedCycle runs a recursive three-color DFS over every component.
func directedCycle(g *core.Graph) ([]string, bool, error) {
	color := make(map[string]int, g.VertexCount())
	parent := make(map[string]string)

	var cycle []string
	var visit func(id string) (bool, error)
	visit = func(id string) (bool, error) {
		color[id] = gray
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, next := range nbrs {
			switch color[next] {
			case white:
				parent[next] = id
				found, err := visit(next)
				if err != nil || found {
					return found, err
				}
			case gray:
				// Back edge id→next: unwind the path next ... id, next.
				cycle = unwind(parent, id, next)

				return true, nil
			}
		}
		color[id] = black

		return false, nil
	}

	for _, v := range g.Vertices() {
		if color[v] != white {
			continue
		}
		found, err := visit(v)
		if err != nil {
			return nil, false, err
		}
		if found {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// undirectedCycle detects a cycle ignoring the edge used to arrive at
// each vertex. Multi-edges need edge-ID granularity: arriving over
// edge e, a sibling edge back to the parent still closes a cycle.
func undirectedCycle(g *core.Graph) ([]string, bool, error) {
	visited := make(map[string]bool, g.VertexCount())
	parent := make(map[string]string)

	var cycle []string
	var visit func(id, viaEdge string) (bool, error)
	visit = func(id, viaEdge string) (bool, error) {
		visited[id] = true
		edges, err := g.Neighbors(id)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			next := e.Other(id)
			if e.ID == viaEdge {
				continue // the edge we came in on
			}
			if next == id {
				// Self-loop.
				cycle = []string{id, id}

				return true, nil
			}
			if visited[next] {
				// Found a cycle: next ... id, next.
				cycle = unwind(parent, id, next)

				return true, nil
			}
			parent[next] = id
			found, err := visit(next, e.ID)
			if err != nil || found {
				return found, err
			}
		}

		return false, nil
	}

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		found, err := visit(v, "")
		if err != nil {
			return nil, false, err
		}
		if found {
			return cycle, true, nil
		}
	}

	return nil, false, nil
}

// unwind walks parent links from tail back to head and returns the
// closed cycle head → ... → tail → head.
func unwind(parent map[string]string, tail, head string) []string {
	rev := []string{tail}
	for cur := tail; cur != head; {
		cur = parent[cur]
		rev = append(rev, cur)
	}
	// Reverse into head-first order, then close the loop.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return append(rev, head)
}
