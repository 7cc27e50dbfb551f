// Package shortest: options, result type, and sentinel errors.
package shortest

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for the shortest package.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("shortest: source vertex not found")

	// ErrNotWeighted is returned for unweighted graphs; use bfs for those.
	ErrNotWeighted = errors.New("shortest: graph is not weighted")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is
	// negative.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNegativeCycle is returned by BellmanFord when a negative cycle
	// is reachable from the source.
	ErrNegativeCycle = errors.New("shortest: negative cycle reachable from source")
)

// Options holds the tunable parameters of one shortest-path run.
type Options struct {
	// Ctx allows cancellation; checked once per settled vertex.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result collects the shortest-path tree of one run.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps every vertex to its shortest distance from Source;
	// +Inf for unreachable vertices.
	Dist map[string]float64

	// Parent maps each reached vertex (except Source) to its
	// predecessor on a shortest path.
	Parent map[string]string

	// NegativeCycle holds a closed vertex sequence (first element
	// repeated last) when BellmanFord finds one; nil otherwise.
	NegativeCycle []string
}

// Reached reports whether v has a finite distance from the source.
func (r *Result) Reached(v string) bool {
	d, ok := r.Dist[v]

	return ok && !math.IsInf(d, 1)
}

// PathTo reconstructs the shortest path from the source to v by
// following parent links. Returns nil when v is unreachable.
func (r *Result) PathTo(v string) []string {
	if !r.Reached(v) {
		return nil
	}
	var rev []string
	for cur := v; ; {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		cur = r.Parent[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
