// Package mst: options, result type, and sentinel errors.
package mst

import (
	"context"
	"errors"

	"github.com/arbelos/arbelos/core"
)

// Sentinel errors for the mst package.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrNotUndirected is returned for directed graphs.
	ErrNotUndirected = errors.New("mst: spanning tree requires an undirected graph")

	// ErrNotWeighted is returned for unweighted graphs.
	ErrNotWeighted = errors.New("mst: graph is not weighted")

	// ErrDisconnected is returned when no spanning tree exists.
	ErrDisconnected = errors.New("mst: graph is not connected")

	// ErrRootNotFound is returned when WithRoot names an absent vertex.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrUnknownAlgorithm is returned for an unrecognized Algorithm value.
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")
)

// Algorithm selects the spanning-tree strategy used by Compute.
type Algorithm int

const (
	// Kruskal sorts all edges and unions components. Best for sparse
	// graphs and the default.
	Kruskal Algorithm = iota

	// Prim grows one tree from a root vertex. Best for dense graphs.
	Prim
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Kruskal:
		return "kruskal"
	case Prim:
		return "prim"
	default:
		return "unknown"
	}
}

// Options holds the tunable parameters of one Compute run.
type Options struct {
	// Algorithm picks the strategy; Kruskal by default.
	Algorithm Algorithm

	// Root seeds Prim's tree. Empty means the first vertex in sorted
	// order. Ignored by Kruskal.
	Root string

	// Ctx allows cancellation; checked periodically.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options selecting Kruskal with a background
// context.
func DefaultOptions() Options {
	return Options{Algorithm: Kruskal, Ctx: context.Background()}
}

// WithAlgorithm selects the spanning-tree strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithRoot seeds Prim's traversal at the given vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result is a minimum spanning tree.
type Result struct {
	// Edges holds the V-1 tree edges in the order the algorithm
	// selected them.
	Edges []core.Edge

	// Weight is the sum of the tree edge weights.
	Weight float64
}
