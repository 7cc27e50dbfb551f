package mst

import "github.com/arbelos/arbelos/core"

// Compute returns a minimum spanning tree of g using the algorithm
// selected by WithAlgorithm (Kruskal by default).
//
// Validation order: nil graph, directedness, weightedness, root
// existence. Connectivity is discovered during the run; a graph that
// cannot be spanned yields ErrDisconnected.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.Directed() {
		return nil, ErrNotUndirected
	}
	if !g.Weighted() {
		return nil, ErrNotWeighted
	}
	if o.Root != "" && !g.HasVertex(o.Root) {
		return nil, ErrRootNotFound
	}

	switch o.Algorithm {
	case Kruskal:
		return kruskal(g, o)
	case Prim:
		return prim(g, o)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
