package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/dfs"
	"github.com/arbelos/arbelos/gen"
	"github.com/arbelos/arbelos/matching"
	"github.com/arbelos/arbelos/mst"
	"github.com/arbelos/arbelos/shortest"
)

func TestPath(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.False(t, g.Directed())

	_, err = gen.Path(0)
	assert.ErrorIs(t, err, gen.ErrBadSize)

	single, err := gen.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.VertexCount())
	assert.Zero(t, single.EdgeCount())
}

func TestCycle(t *testing.T) {
	g, err := gen.Cycle(6)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	_, found, err := dfs.Cycle(g)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = gen.Cycle(2)
	assert.ErrorIs(t, err, gen.ErrBadSize)
}

func TestComplete(t *testing.T) {
	g, err := gen.Complete(6)
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 5, d)
	}
}

func TestGrid(t *testing.T) {
	g, err := gen.Grid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.VertexCount())
	// 3 rows of 3 horizontal edges plus 2 rows of 4 vertical edges.
	assert.Equal(t, 3*3+2*4, g.EdgeCount())

	_, err = gen.Grid(0, 4)
	assert.ErrorIs(t, err, gen.ErrBadSize)
}

func TestBipartite(t *testing.T) {
	g, err := gen.Bipartite(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())

	col, err := matching.Bipartition(g)
	require.NoError(t, err)
	assert.Len(t, col.Side(false), 3)
	assert.Len(t, col.Side(true), 4)

	m, err := matching.MaxMatching(g)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size)
}

func TestRandomSparse(t *testing.T) {
	g, err := gen.RandomSparse(20, 40, gen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.Equal(t, 40, g.EdgeCount())

	// Same seed, same graph.
	h, err := gen.RandomSparse(20, 40, gen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, g.Edges(), h.Edges())

	_, err = gen.RandomSparse(4, 100)
	assert.ErrorIs(t, err, gen.ErrBadSize)
}

func TestDirectedAndWeighted(t *testing.T) {
	g, err := gen.Cycle(4, gen.WithDirected(), gen.WithWeighted(), gen.WithSeed(3))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 0.0)
		assert.Less(t, e.Weight, 1.0)
	}
}

func TestGenerated_FeedAlgorithms(t *testing.T) {
	// A weighted complete graph always has a spanning tree.
	g, err := gen.Complete(10, gen.WithWeighted(), gen.WithSeed(11))
	require.NoError(t, err)
	tree, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Len(t, tree.Edges, 9)

	// Every vertex of a weighted grid is reachable from the corner.
	grid, err := gen.Grid(5, 5, gen.WithWeighted(), gen.WithSeed(11))
	require.NoError(t, err)
	res, err := shortest.Dijkstra(grid, grid.Vertices()[0])
	require.NoError(t, err)
	for _, v := range grid.Vertices() {
		assert.True(t, res.Reached(v), "vertex %s", v)
	}
}
