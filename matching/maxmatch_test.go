package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/core"
	"github.com/arbelos/arbelos/matching"
)

// assertValidMatching checks the Pairs map is symmetric, follows
// actual edges, and agrees with the Koenig certificate.
func assertValidMatching(t *testing.T, g *core.Graph, m *matching.Matching) {
	t.Helper()
	for v, w := range m.Pairs {
		assert.Equal(t, v, m.Pairs[w], "pairs must be symmetric")
		assert.True(t, g.HasEdge(v, w), "pair %s-%s is not an edge", v, w)
	}
	assert.Equal(t, m.Size, len(m.Pairs)/2)

	// Koenig: the cover size equals the matching size and touches
	// every edge.
	assert.Len(t, m.MinVertexCover, m.Size)
	inCover := make(map[string]bool, len(m.MinVertexCover))
	for _, v := range m.MinVertexCover {
		inCover[v] = true
	}
	for _, e := range g.Edges() {
		assert.True(t, inCover[e.From] || inCover[e.To],
			"edge %s-%s not covered", e.From, e.To)
	}
}

func TestMaxMatching_PerfectMatching(t *testing.T) {
	// A 3x3 bipartite graph with a perfect matching.
	g := core.NewGraph()
	_, _ = g.AddEdge("l1", "r1", 0)
	_, _ = g.AddEdge("l1", "r2", 0)
	_, _ = g.AddEdge("l2", "r1", 0)
	_, _ = g.AddEdge("l3", "r2", 0)
	_, _ = g.AddEdge("l3", "r3", 0)

	m, err := matching.MaxMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size)
	assertValidMatching(t, g, m)
	assert.True(t, m.Matched("l2"))
	assert.False(t, m.Matched("zzz"))
}

func TestMaxMatching_NeedsAugmentation(t *testing.T) {
	// Greedy matching l1-r1 blocks l2; an augmenting path fixes it.
	g := core.NewGraph()
	_, _ = g.AddEdge("l1", "r1", 0)
	_, _ = g.AddEdge("l1", "r2", 0)
	_, _ = g.AddEdge("l2", "r1", 0)

	m, err := matching.MaxMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size)
	assertValidMatching(t, g, m)
}

func TestMaxMatching_StarGraph(t *testing.T) {
	// A star can match at most one edge no matter its size.
	g := core.NewGraph()
	for _, leaf := range []string{"r1", "r2", "r3", "r4", "r5"} {
		_, _ = g.AddEdge("hub", leaf, 0)
	}

	m, err := matching.MaxMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size)
	assertValidMatching(t, g, m)
}

func TestMaxMatching_NotBipartite(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	_, err := matching.MaxMatching(g)
	assert.ErrorIs(t, err, matching.ErrOddCycle)
}

func TestMaxMatching_EmptyAndEdgeless(t *testing.T) {
	m, err := matching.MaxMatching(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, m.Size)

	g := core.NewGraph()
	_ = g.AddVertex("A")
	_ = g.AddVertex("B")
	m, err = matching.MaxMatching(g)
	require.NoError(t, err)
	assert.Zero(t, m.Size)
	assert.Empty(t, m.MinVertexCover)
}
