package shortest

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/arbelos/arbelos/core"
)

// BellmanFord computes single-source shortest paths from src, allowing
// negative edge weights. The relaxation is queue-based: only vertices
// whose distance changed in the previous round are re-examined, which
// degrades gracefully to the classic V-1 full passes in the worst case.
//
// If a negative cycle is reachable from src, the run stops with
// ErrNegativeCycle and the returned Result carries the cycle in
// NegativeCycle (closed sequence, first element repeated last).
// Complexity: O(V·E) time worst case, O(V) memory.
func BellmanFord(g *core.Graph, src string, opts ...Option) (*Result, error) {
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

	n := g.VertexCount()
	res := &Result{
		Source: src,
		Dist:   make(map[string]float64, n),
		Parent: make(map[string]string),
	}
	for _, v := range g.Vertices() {
		res.Dist[v] = math.Inf(1)
	}
	res.Dist[src] = 0

	queue := linkedlistqueue.New()
	queue.Enqueue(src)
	inQueue := map[string]bool{src: true}
	relaxCount := make(map[string]int, n)

	for !queue.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		front, _ := queue.Dequeue()
		v := front.(string)
		inQueue[v] = false

		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("shortest: neighbors of %q: %w", v, err)
		}
		for _, e := range edges {
			w := e.Other(v)
			alt := res.Dist[v] + e.Weight
			if alt >= res.Dist[w] {
				continue
			}
			res.Dist[w] = alt
			res.Parent[w] = v

			// A vertex relaxed V times sits on or behind a negative cycle.
			relaxCount[w]++
			if relaxCount[w] >= n {
				res.NegativeCycle = traceNegativeCycle(res.Parent, w, n)

				return res, ErrNegativeCycle
			}
			if !inQueue[w] {
				queue.Enqueue(w)
				inQueue[w] = true
			}
		}
	}

	return res, nil
}

// traceNegativeCycle recovers a cycle from parent links. Walking n
// steps back from a vertex relaxed n times is guaranteed to land
// inside the cycle; a second walk with a seen-set closes it.
func traceNegativeCycle(parent map[string]string, from string, n int) []string {
	cur := from
	for i := 0; i < n; i++ {
		cur = parent[cur]
	}

	seen := make(map[string]bool)
	var rev []string
	for !seen[cur] {
		seen[cur] = true
		rev = append(rev, cur)
		cur = parent[cur]
	}
	// rev may include a tail leading into the cycle; trim to the part
	// starting at the re-encountered vertex.
	start := 0
	for i, v := range rev {
		if v == cur {
			start = i

			break
		}
	}
	cycle := rev[start:]
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return append(cycle, cycle[0])
}
