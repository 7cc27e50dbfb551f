package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/arbelos/arbelos/core"
)

// MaxMatching computes a maximum-cardinality matching of a bipartite
// undirected graph using Hopcroft-Karp: each phase builds a BFS
// layering from the free left vertices, then augments along a maximal
// set of vertex-disjoint shortest paths by DFS.
//
// The graph must be bipartite; a non-bipartite input surfaces the
// underlying ErrOddCycle. The returned Matching also carries a
// minimum vertex cover derived from the final layering (Koenig's
// theorem), certifying that no larger matching exists.
// Complexity: O(E·sqrt(V)).
func MaxMatching(g *core.Graph) (*Matching, error) {
	col, err := Bipartition(g)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	left := col.Side(false)

	hk := &hopcroftKarp{
		graph: g,
		left:  left,
		match: make(map[string]string),
		dist:  make(map[string]float64),
	}
	for {
		if !hk.layer() {
			break
		}
		for _, u := range left {
			if _, ok := hk.match[u]; !ok {
				_, _ = hk.augment(u)
			}
		}
	}

	m := &Matching{Pairs: hk.match, Size: len(hk.match) / 2}
	m.MinVertexCover = hk.cover(col)

	return m, nil
}

// hopcroftKarp carries the per-run state: the matching (stored in
// both directions) and the BFS layering of the current phase.
type hopcroftKarp struct {
	graph *core.Graph
	left  []string
	match map[string]string
	dist  map[string]float64
}

// layer runs the phase BFS from all free left vertices and reports
// whether any augmenting path exists. dist is +Inf for left vertices
// not reached by an alternating path of the shortest length.
func (hk *hopcroftKarp) layer() bool {
	for k := range hk.dist {
		delete(hk.dist, k)
	}
	queue := linkedlistqueue.New()
	for _, u := range hk.left {
		if _, ok := hk.match[u]; !ok {
			hk.dist[u] = 0
			queue.Enqueue(u)
		}
	}

	found := false
	for !queue.Empty() {
		front, _ := queue.Dequeue()
		u := front.(string)
		nbrs, _ := hk.graph.NeighborIDs(u)
		for _, v := range nbrs {
			w, matched := hk.match[v]
			if !matched {
				found = true // free right vertex ends a shortest path

				continue
			}
			if _, seen := hk.dist[w]; !seen {
				hk.dist[w] = hk.dist[u] + 1
				queue.Enqueue(w)
			}
		}
	}

	return found
}

// augment searches depth-first for an augmenting path from the free
// left vertex u along the current layering, flipping matched edges on
// the way back.
func (hk *hopcroftKarp) augment(u string) (bool, error) {
	nbrs, err := hk.graph.NeighborIDs(u)
	if err != nil {
		return false, fmt.Errorf("matching: neighbors of %q: %w", u, err)
	}
	for _, v := range nbrs {
		w, matched := hk.match[v]
		if !matched {
			hk.match[u], hk.match[v] = v, u

			return true, nil
		}
		if hk.dist[w] == hk.dist[u]+1 {
			ok, err := hk.augment(w)
			if err != nil {
				return false, err
			}
			if ok {
				hk.match[u], hk.match[v] = v, u

				return true, nil
			}
		}
	}
	hk.dist[u] = math.Inf(1) // dead end for this phase

	return false, nil
}

// cover derives a minimum vertex cover from the final (failed)
// layering: left vertices the last BFS could not reach plus right
// vertices it could.
func (hk *hopcroftKarp) cover(col *Coloring) []string {
	reachedRight := make(map[string]bool)
	for _, u := range hk.left {
		if _, ok := hk.dist[u]; !ok || math.IsInf(hk.dist[u], 1) {
			continue
		}
		nbrs, _ := hk.graph.NeighborIDs(u)
		for _, v := range nbrs {
			reachedRight[v] = true
		}
	}

	var out []string
	for _, u := range hk.left {
		if _, ok := hk.dist[u]; !ok || math.IsInf(hk.dist[u], 1) {
			out = append(out, u)
		}
	}
	for v := range reachedRight {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
