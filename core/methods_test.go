package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/core"
)

// buildTriangle returns the weighted triangle A-B(1), B-C(2), A-C(3).
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// TestVertices_Sorted checks deterministic lexicographic ordering.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
}

// TestEdges_InsertionOrder checks numeric edge-ID ordering, including
// past the single-digit boundary where lexicographic order would lie.
func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithWeighted())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("u", "v", float64(i))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, float64(i), e.Weight, "edge %s out of insertion order", e.ID)
	}
}

// TestNeighbors_Undirected verifies mirrored incident edges and Other.
func TestNeighbors_Undirected(t *testing.T) {
	g := buildTriangle()

	nbrs, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nbrs, 2)

	opposites := []string{nbrs[0].Other("B"), nbrs[1].Other("B")}
	assert.Equal(t, []string{"A", "C"}, opposites)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestDegree_LoopCountsTwice pins the undirected degree convention.
func TestDegree_LoopCountsTwice(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
}

// TestDegrees_Directed covers in/out degree bookkeeping.
func TestDegrees_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "B", 0)
	_, _ = g.AddEdge("B", "A", 0)

	in, err := g.InDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	out, err := g.OutDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 1, out)

	deg, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	// Degree queries are directed-only in this form.
	u := core.NewGraph()
	_ = u.AddVertex("A")
	_, err = u.InDegree("A")
	assert.ErrorIs(t, err, core.ErrNotDirected)
}

// TestClone_Independence verifies the deep copy does not alias state.
func TestClone_Independence(t *testing.T) {
	g := buildTriangle()
	c := g.Clone()

	require.Equal(t, g.Vertices(), c.Vertices())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutating the clone must not leak into the original.
	_, err := c.AddEdge("C", "D", 4)
	require.NoError(t, err)
	assert.False(t, g.HasVertex("D"))
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount())
}

// TestReverse flips every directed edge and preserves weights.
func TestReverse(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)

	r, err := g.Reverse()
	require.NoError(t, err)

	assert.True(t, r.HasEdge("B", "A"))
	assert.True(t, r.HasEdge("C", "B"))
	assert.False(t, r.HasEdge("A", "B"))

	edges := r.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, float64(1), edges[0].Weight)

	_, err = core.NewGraph().Reverse()
	assert.ErrorIs(t, err, core.ErrNotDirected)
}
