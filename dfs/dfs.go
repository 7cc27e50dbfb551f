package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/arbelos/arbelos/core"
)

// walkFrame tracks one vertex on the explicit DFS stack together with
// its remaining unexplored neighbors.
type walkFrame struct {
	id   string
	nbrs []string // sorted neighbor IDs
	next int      // index of the next neighbor to try
}

// walker carries the mutable state of one traversal.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g. In single-source mode the
// search starts at start; with WithFullTraversal it restarts from
// every unvisited vertex in sorted order and start is ignored.
//
// The traversal is iterative and matches the vertex ordering a
// recursive implementation would produce (neighbors in sorted order).
// Complexity: O(V + E).
func DFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Preorder:  make([]string, 0, n),
			Postorder: make([]string, 0, n),
			Parent:    make(map[string]string, n),
			Visited:   make(map[string]bool, n),
		},
	}

	if o.FullTraversal {
		for _, v := range g.Vertices() {
			if w.res.Visited[v] {
				continue
			}
			if err := w.explore(v); err != nil {
				return w.res, err
			}
		}
	} else if err := w.explore(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// Reachable marks every vertex reachable from the given sources
// (each source is reachable from itself). Unknown sources yield
// ErrStartNotFound. Complexity: O(V + E).
func Reachable(g *core.Graph, sources ...string) (map[string]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	marked := make(map[string]bool, g.VertexCount())
	stack := arraystack.New()
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrStartNotFound, s)
		}
		if !marked[s] {
			marked[s] = true
			stack.Push(s)
		}
	}

	for !stack.Empty() {
		top, _ := stack.Pop()
		id := top.(string)
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, next := range nbrs {
			if !marked[next] {
				marked[next] = true
				stack.Push(next)
			}
		}
	}

	return marked, nil
}

// explore runs one rooted depth-first walk from root.
func (w *walker) explore(root string) error {
	stack := arraystack.New()

	if err := w.discover(root, "", stack); err != nil {
		return err
	}

	for !stack.Empty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := stack.Peek()
		fr := top.(*walkFrame)

		// Advance to the next unvisited, unfiltered neighbor.
		advanced := false
		for fr.next < len(fr.nbrs) {
			next := fr.nbrs[fr.next]
			fr.next++
			if w.res.Visited[next] || !w.opts.FilterNeighbor(fr.id, next) {
				continue
			}
			if err := w.discover(next, fr.id, stack); err != nil {
				return err
			}
			advanced = true

			break
		}
		if advanced {
			continue
		}

		// Neighbors exhausted: finish the vertex.
		stack.Pop()
		w.res.Postorder = append(w.res.Postorder, fr.id)
		if err := w.opts.OnExit(fr.id); err != nil {
			return fmt.Errorf("dfs: OnExit at %q: %w", fr.id, err)
		}
	}

	return nil
}

// discover marks id visited, records bookkeeping, and pushes its frame.
func (w *walker) discover(id, parent string, stack *arraystack.Stack) error {
	w.res.Visited[id] = true
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Preorder = append(w.res.Preorder, id)
	if err := w.opts.OnVisit(id); err != nil {
		return fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
	}

	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	stack.Push(&walkFrame{id: id, nbrs: nbrs})

	return nil
}
