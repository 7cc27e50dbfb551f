package mst

import (
	"fmt"
	"math"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/pq"
)

// prim grows a single tree from a root. Every non-tree vertex sits in
// an indexed min-heap keyed by the lightest edge connecting it to the
// tree; scanning a vertex decrease-keys its fringe neighbors.
// Complexity: O(E log V) time, O(V) memory.
func prim(g *core.Graph, o Options) (*Result, error) {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return &Result{}, nil
	}
	root := o.Root
	if root == "" {
		root = vertices[0]
	}

	heap := pq.NewIndexMin[float64]()
	for _, v := range vertices {
		key := math.Inf(1)
		if v == root {
			key = 0
		}
		_ = heap.Insert(v, key)
	}
	edgeTo := make(map[string]core.Edge, len(vertices))
	res := &Result{Edges: make([]core.Edge, 0, len(vertices)-1)}

	for !heap.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v, key, _ := heap.Pop()
		if math.IsInf(key, 1) {
			return nil, ErrDisconnected
		}
		if v != root {
			e := edgeTo[v]
			res.Edges = append(res.Edges, e)
			res.Weight += e.Weight
		}

		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("mst: neighbors of %q: %w", v, err)
		}
		for _, e := range edges {
			w := e.Other(v)
			if !heap.Contains(w) {
				continue // already in the tree (or a self-loop)
			}
			cur, _ := heap.KeyOf(w)
			if e.Weight < cur {
				edgeTo[w] = e
				_ = heap.Update(w, e.Weight)
			}
		}
	}

	return res, nil
}
