package shortest

import (
	"fmt"
	"math"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/pq"
)

// Dijkstra computes single-source shortest paths from src on a
// weighted graph with non-negative edge weights. Directed graphs
// follow edge direction; undirected graphs relax both ways.
//
// The implementation is eager: every vertex sits in an indexed
// min-heap keyed by its tentative distance, and each relaxation
// performs a decrease-key. A vertex is settled the moment it is
// popped.
//
// Returns ErrNegativeWeight if any edge in the graph is negative;
// the pre-scan covers the whole graph, not just the reachable part.
// Complexity: O((V + E) log V) time, O(V) memory.
func Dijkstra(g *core.Graph, src string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Weighted() {
		return nil, ErrNotWeighted
	}
	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s (%s->%s, %g)",
				ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
	}

	res := &Result{
		Source: src,
		Dist:   make(map[string]float64, g.VertexCount()),
		Parent: make(map[string]string),
	}
	heap := pq.NewIndexMin[float64]()
	for _, v := range g.Vertices() {
		d := math.Inf(1)
		if v == src {
			d = 0
		}
		res.Dist[v] = d
		_ = heap.Insert(v, d)
	}

	for !heap.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v, dv, _ := heap.Pop()
		if math.IsInf(dv, 1) {
			break // only unreachable vertices remain
		}
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("shortest: neighbors of %q: %w", v, err)
		}
		for _, e := range edges {
			w := e.Other(v)
			if alt := dv + e.Weight; alt < res.Dist[w] {
				res.Dist[w] = alt
				res.Parent[w] = v
				_ = heap.Update(w, alt)
			}
		}
	}

	return res, nil
}
