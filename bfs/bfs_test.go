package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelos/arbelos/bfs"
	"github.com/arbelos/arbelos/core"
)

// buildChain returns A-B-C-D-E as an undirected path.
func buildChain() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "D", 0)
	_, _ = g.AddEdge("D", "E", 0)

	return g
}

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_ = g.AddVertex("A")
	_, err = bfs.BFS(g, "Z")
	assert.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DistancesAndParents(t *testing.T) {
	g := buildChain()
	_, _ = g.AddEdge("B", "X", 0) // branch off the chain

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Dist["A"])
	assert.Equal(t, 2, res.Dist["C"])
	assert.Equal(t, 2, res.Dist["X"])
	assert.Equal(t, 4, res.Dist["E"])
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, "A", res.Order[0])
	assert.Len(t, res.Order, 6)

	path, err := res.PathTo("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, path)
}

func TestBFS_DirectedReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("C", "A", 0) // only reachable against the arrows

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.True(t, res.Reached("B"))
	assert.False(t, res.Reached("C"))

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(buildChain(), "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)

	assert.True(t, res.Reached("C"))
	assert.False(t, res.Reached("D"))
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildChain()
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, next string) bool {
		return next != "C" // cut the chain at C
	}))
	require.NoError(t, err)

	assert.True(t, res.Reached("B"))
	assert.False(t, res.Reached("C"))
	assert.False(t, res.Reached("E"))
}

func TestBFS_HookAbort(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(buildChain(), "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return boom
		}

		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the first dequeue

	_, err := bfs.BFS(buildChain(), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_VisitOrderIsDeterministic(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"delta", "bravo", "charlie"} {
		_, _ = g.AddEdge("root", to, 0)
	}

	for i := 0; i < 5; i++ {
		res, err := bfs.BFS(g, "root")
		require.NoError(t, err)
		assert.Equal(t, []string{"root", "bravo", "charlie", "delta"}, res.Order)
	}
}
