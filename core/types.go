// Package core: Graph, Edge, construction options, and sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop while loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge while multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: parallel edge not allowed")

	// ErrNotDirected indicates a directed-only operation on an undirected graph.
	ErrNotDirected = errors.New("core: operation requires a directed graph")
)

// Edge is a connection between two vertices.
//
// ID is unique within the owning Graph. In an undirected graph the
// From/To orientation is storage order only; the edge is traversable
// both ways. Weight is zero in unweighted graphs.
type Edge struct {
	// ID uniquely identifies this edge ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost. Always 0 when the graph is unweighted.
	Weight float64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes every edge one-way from→to (true) or
// bidirectional (false, the default).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted permits non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges with From == To).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same endpoints.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an adjacency-indexed multigraph over string vertex IDs.
//
// The zero value is not usable; construct with NewGraph. All methods
// are safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdge uint64 // edge ID counter, guarded by mu

	vertices map[string]struct{}
	edges    map[string]*Edge

	// adjacency[from][to] holds the IDs of every edge from→to.
	// Undirected edges appear under both orderings.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. The default configuration is
// undirected, unweighted, no loops, no parallel edges.
// Complexity: O(1).
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges may carry non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// MultiEdged reports whether parallel edges are permitted.
func (g *Graph) MultiEdged() bool { return g.allowMulti }
