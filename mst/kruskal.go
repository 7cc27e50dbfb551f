package mst

import (
	"fmt"
	"sort"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/unionfind"
)

// kruskal grows a spanning forest by taking edges in weight order and
// keeping those that join two different components. The union-find
// guard makes each acceptance test near-constant.
// Complexity: O(E log E) time, O(V + E) memory.
func kruskal(g *core.Graph, o Options) (*Result, error) {
	vertices := g.Vertices()
	need := len(vertices) - 1
	if need <= 0 {
		return &Result{}, nil
	}

	// Edges() is in insertion order; a stable sort keeps ties
	// deterministic.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := unionfind.New(vertices...)
	res := &Result{Edges: make([]core.Edge, 0, need)}

	for _, e := range edges {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if e.From == e.To {
			continue // self-loops never span
		}
		merged, err := uf.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("mst: union %s-%s: %w", e.From, e.To, err)
		}
		if !merged {
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
		if len(res.Edges) == need {
			return res, nil
		}
	}

	return nil, ErrDisconnected
}
