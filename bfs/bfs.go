package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/arbelos/arbelos/core"
)

// frame pairs a queued vertex with its depth.
type frame struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from start.
//
// Validation order: nil graph → ErrGraphNil, bad option →
// ErrOptionViolation, missing start → ErrStartNotFound. The traversal
// itself can only fail through the context or the OnVisit hook.
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Dist:   make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	queue := linkedlistqueue.New()
	queue.Enqueue(frame{id: start})
	res.Dist[start] = 0

	for !queue.Empty() {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		item, _ := queue.Dequeue()
		cur := item.(frame)

		res.Order = append(res.Order, cur.id)
		if err := o.OnVisit(cur.id, cur.depth); err != nil {
			return res, fmt.Errorf("bfs: OnVisit at %q: %w", cur.id, err)
		}

		if o.MaxDepth > 0 && cur.depth == o.MaxDepth {
			continue // frontier reached the depth limit
		}

		nbrs, err := g.NeighborIDs(cur.id)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbors of %q: %w", cur.id, err)
		}
		for _, next := range nbrs {
			if _, seen := res.Dist[next]; seen {
				continue
			}
			if !o.FilterNeighbor(cur.id, next) {
				continue
			}
			res.Dist[next] = cur.depth + 1
			res.Parent[next] = cur.id
			queue.Enqueue(frame{id: next, depth: cur.depth + 1})
		}
	}

	return res, nil
}
