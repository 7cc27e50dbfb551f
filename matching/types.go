// Package matching: result types and sentinel errors.
package matching

import (
	"errors"
	"sort"
)

// Sentinel errors for the matching package.
var (
	// ErrGraphNil is returned for a nil graph pointer.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrNotUndirected is returned for directed graphs.
	ErrNotUndirected = errors.New("matching: operation requires an undirected graph")

	// ErrOddCycle is returned when the graph is not bipartite; the
	// accompanying result carries the odd cycle as a certificate.
	ErrOddCycle = errors.New("matching: graph contains an odd cycle")

	// ErrMatrixNil is returned for a nil cost matrix.
	ErrMatrixNil = errors.New("matching: cost matrix is nil")

	// ErrNotSquare is returned when the assignment cost matrix is not
	// square.
	ErrNotSquare = errors.New("matching: cost matrix is not square")
)

// Coloring is the outcome of a bipartition attempt. Exactly one of
// the two certificates is populated: Color when the graph is
// bipartite, OddCycle when it is not.
type Coloring struct {
	// Color assigns each vertex a side; vertices with equal color
	// never share an edge.
	Color map[string]bool

	// OddCycle is a closed odd-length vertex sequence (first element
	// repeated last) proving the graph is not bipartite.
	OddCycle []string
}

// Side returns the sorted vertices colored with the given side.
func (c *Coloring) Side(color bool) []string {
	var out []string
	for v, col := range c.Color {
		if col == color {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Matching is a maximum-cardinality matching of a bipartite graph.
type Matching struct {
	// Pairs maps each matched vertex to its partner, in both
	// directions.
	Pairs map[string]string

	// Size is the number of matched edges.
	Size int

	// MinVertexCover is a minimum vertex cover certifying maximality
	// (Koenig's theorem: its size equals Size). Sorted.
	MinVertexCover []string
}

// Matched reports whether v participates in the matching.
func (m *Matching) Matched(v string) bool {
	_, ok := m.Pairs[v]

	return ok
}

// Assignment is a minimum-cost perfect assignment of rows to columns.
type Assignment struct {
	// RowToCol maps each row index to its assigned column index.
	RowToCol []int

	// Cost is the total cost of the assignment.
	Cost float64
}
