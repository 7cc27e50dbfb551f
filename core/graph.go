package core

import "strconv"

// AddVertex inserts a vertex with the given ID. Adding an existing
// vertex is a no-op. Returns ErrEmptyVertexID for the empty string.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertexLocked(id)

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v)) plus map deletions.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	// Drop edges stored under id's own adjacency rows.
	for to, ids := range g.adjacency[id] {
		for eid := range ids {
			delete(g.edges, eid)
		}
		// Mirror rows hold the same edge IDs only when undirected; on
		// a digraph adjacency[to][id] is a distinct inbound edge that
		// the sweep below must delete first.
		if !g.directed {
			if row, ok := g.adjacency[to]; ok {
				delete(row, id)
			}
		}
	}
	delete(g.adjacency, id)

	// Directed edges arriving at id live under other rows; sweep them.
	for from, row := range g.adjacency {
		ids, ok := row[id]
		if !ok {
			continue
		}
		for eid := range ids {
			delete(g.edges, eid)
		}
		delete(g.adjacency[from], id)
	}

	delete(g.vertices, id)

	return nil
}

// AddEdge inserts an edge from→to with the given weight, creating
// missing endpoints implicitly. It returns the generated edge ID.
//
// Validation, in order:
//   - empty endpoint            → ErrEmptyVertexID
//   - weight != 0 on unweighted → ErrBadWeight
//   - from == to without loops  → ErrLoopNotAllowed
//   - duplicate pair w/o multi  → ErrMultiEdgeNotAllowed
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.ensureVertexLocked(from)
	g.ensureVertexLocked(to)

	g.nextEdge++
	id := "e" + strconv.FormatUint(g.nextEdge, 10)
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight}

	g.linkLocked(from, to, id)
	if !g.directed && from != to {
		g.linkLocked(to, from, id)
	}

	return id, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}

	g.unlinkLocked(e.From, e.To, id)
	if !g.directed && e.From != e.To {
		g.unlinkLocked(e.To, e.From, id)
	}
	delete(g.edges, id)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// In an undirected graph the orientation does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// ensureVertexLocked registers id in vertices and adjacency.
// Caller holds mu.
func (g *Graph) ensureVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// linkLocked records edge id under adjacency[from][to]. Caller holds mu.
func (g *Graph) linkLocked(from, to, id string) {
	row := g.adjacency[from]
	if row[to] == nil {
		row[to] = make(map[string]struct{})
	}
	row[to][id] = struct{}{}
}

// unlinkLocked removes edge id from adjacency[from][to], pruning the
// cell when it empties. Caller holds mu.
func (g *Graph) unlinkLocked(from, to, id string) {
	cell := g.adjacency[from][to]
	delete(cell, id)
	if len(cell) == 0 {
		delete(g.adjacency[from], to)
	}
}
