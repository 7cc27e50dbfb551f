package core

import (
	"sort"
	"strconv"
)

// Other returns the endpoint of e opposite to v. If v is neither
// endpoint, it returns v unchanged; callers obtain edges from
// Neighbors and always pass one of the endpoints.
func (e *Edge) Other(v string) string {
	if v == e.From {
		return e.To
	}
	if v == e.To {
		return e.From
	}

	return v
}

// Vertices returns every vertex ID in lexicographic order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Edges returns a copy of every edge, ordered by insertion
// (ascending numeric edge ID). Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// Neighbors returns a copy of every edge traversable from id:
// out-edges in a directed graph, all incident edges (including
// mirrored ones, where e.From != id) in an undirected graph.
// Results are ordered by (opposite endpoint, edge ID).
// Returns ErrVertexNotFound for a missing vertex.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	var out []Edge
	for _, ids := range g.adjacency[id] {
		for eid := range ids {
			out = append(out, *g.edges[eid])
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Other(id), out[j].Other(id)
		if oi != oj {
			return oi < oj
		}

		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the sorted, de-duplicated IDs of vertices
// adjacent to id (reachable over one edge). Self-loops contribute id
// itself. Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.mu.RUnlock()

		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(g.adjacency[id]))
	for to := range g.adjacency[id] {
		ids = append(ids, to)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edge endpoints at id: each incident
// edge counts once, a self-loop counts twice in an undirected graph.
// For directed graphs this equals InDegree+OutDegree.
// Complexity: O(deg) undirected, O(E) directed.
func (g *Graph) Degree(id string) (int, error) {
	if g.directed {
		in, err := g.InDegree(id)
		if err != nil {
			return 0, err
		}
		out, _ := g.OutDegree(id)

		return in + out, nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for to, ids := range g.adjacency[id] {
		deg += len(ids)
		if to == id {
			deg += len(ids) // loop touches the vertex twice
		}
	}

	return deg, nil
}

// OutDegree returns the number of edges leaving id.
// Only meaningful on directed graphs; returns ErrNotDirected otherwise.
// Complexity: O(deg).
func (g *Graph) OutDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for _, ids := range g.adjacency[id] {
		deg += len(ids)
	}

	return deg, nil
}

// InDegree returns the number of edges entering id.
// Only meaningful on directed graphs; returns ErrNotDirected otherwise.
// Complexity: O(E).
func (g *Graph) InDegree(id string) (int, error) {
	if !g.directed {
		return 0, ErrNotDirected
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}
	deg := 0
	for _, e := range g.edges {
		if e.To == id {
			deg++
		}
	}

	return deg, nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the graph: same flags, vertices, and
// edges. Edge IDs are preserved. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdge:   g.nextEdge,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
		c.adjacency[id] = make(map[string]map[string]struct{}, len(g.adjacency[id]))
	}
	for id, e := range g.edges {
		dup := *e
		c.edges[id] = &dup
	}
	for from, row := range g.adjacency {
		for to, ids := range row {
			cell := make(map[string]struct{}, len(ids))
			for eid := range ids {
				cell[eid] = struct{}{}
			}
			c.adjacency[from][to] = cell
		}
	}

	return c
}

// Reverse returns a new directed graph with every edge flipped
// (to→from). Edge IDs and weights are preserved.
// Returns ErrNotDirected on undirected graphs.
// Complexity: O(V + E).
func (g *Graph) Reverse() (*Graph, error) {
	if !g.directed {
		return nil, ErrNotDirected
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		directed:   true,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdge:   g.nextEdge,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		r.vertices[id] = struct{}{}
		r.adjacency[id] = make(map[string]map[string]struct{})
	}
	for id, e := range g.edges {
		r.edges[id] = &Edge{ID: id, From: e.To, To: e.From, Weight: e.Weight}
		r.linkLocked(e.To, e.From, id)
	}

	return r, nil
}

// edgeSeq extracts the numeric suffix of an edge ID for ordering.
// Malformed IDs sort first.
func edgeSeq(id string) uint64 {
	if len(id) < 2 || id[0] != 'e' {
		return 0
	}
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
