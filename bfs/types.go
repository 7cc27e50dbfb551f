// Package bfs: options, result type, and sentinel errors.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start vertex is absent.
	ErrStartNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option")

	// ErrNoPath is returned by Result.PathTo for unreached vertices.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Options holds the tunable parameters of one BFS run.
type Options struct {
	// Ctx allows cancellation; checked once per dequeue.
	Ctx context.Context

	// MaxDepth, when > 0, stops exploring past that depth. Zero means
	// no limit.
	MaxDepth int

	// FilterNeighbor skips the edge curr→next when it returns false.
	FilterNeighbor func(curr, next string) bool

	// OnVisit runs when a vertex is dequeued; a non-nil error aborts
	// the traversal and is propagated to the caller.
	OnVisit func(id string, depth int) error

	err error // recorded by option constructors, surfaced by BFS
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no depth
// limit, no filtering, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
		OnVisit:        func(string, int) error { return nil },
	}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the search depth.
//
//	d > 0  : explore up to depth d
//	d == 0 : no limit
//	d < 0  : ErrOptionViolation at call time
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth %d is negative", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false. Nil is ignored.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers the visit hook. Nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result collects the outcome of one BFS run.
type Result struct {
	// Order lists vertices in visit sequence, start first.
	Order []string

	// Dist maps each reached vertex to its distance in edges.
	Dist map[string]int

	// Parent maps each reached vertex (except the start) to its
	// predecessor in the BFS tree.
	Parent map[string]string
}

// Reached reports whether id was reached by the traversal.
func (r *Result) Reached(id string) bool {
	_, ok := r.Dist[id]

	return ok
}

// PathTo reconstructs the shortest unweighted path from the start
// vertex to dest. Returns ErrNoPath for unreached vertices.
// Complexity: O(path length).
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for {
		prev, ok := r.Parent[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	// Reverse into start→dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
