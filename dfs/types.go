// Package dfs: options, result type, and sentinel errors.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for the dfs package.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned when a start vertex is absent.
	ErrStartNotFound = errors.New("dfs: start vertex not found")

	// ErrNotDirected is returned by directed-only operations.
	ErrNotDirected = errors.New("dfs: operation requires a directed graph")

	// ErrCycle is returned by TopologicalSort on cyclic input.
	ErrCycle = errors.New("dfs: graph contains a cycle")
)

// Options holds the tunable parameters of one DFS run.
type Options struct {
	// Ctx allows cancellation; checked once per stack pop.
	Ctx context.Context

	// FullTraversal restarts the search from every unvisited vertex
	// (in sorted order), covering disconnected components.
	FullTraversal bool

	// FilterNeighbor skips the edge curr→next when it returns false.
	FilterNeighbor func(curr, next string) bool

	// OnVisit runs at first discovery (preorder); an error aborts.
	OnVisit func(id string) error

	// OnExit runs when a vertex is finished (postorder); an error aborts.
	OnExit func(id string) error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context,
// single-source mode, no filtering, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ string) bool { return true },
		OnVisit:        func(string) error { return nil },
		OnExit:         func(string) error { return nil },
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

// WithFullTraversal covers all components, not just the start's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// WithFilterNeighbor skips edges for which fn returns false. Nil is ignored.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnVisit registers the preorder hook. Nil is ignored.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers the postorder hook. Nil is ignored.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// Result collects the outcome of one DFS run.
type Result struct {
	// Preorder lists vertices in discovery order.
	Preorder []string

	// Postorder lists vertices in finish order.
	Postorder []string

	// Parent maps each discovered vertex (except roots) to the vertex
	// that discovered it.
	Parent map[string]string

	// Visited marks every vertex reached by the traversal.
	Visited map[string]bool
}
