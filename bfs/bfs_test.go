package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/bfs"
	"github.com/katalvlaran/lvstep/core"
)

func graph(t *testing.T, directed bool, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 3)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	var typedNil *core.Graph
	_, err = bfs.BFS(typedNil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graph(t, true, [2]string{"A", "B"})
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := graph(t, false, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "A"})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "A", res.Order[0])
	assert.ElementsMatch(t, []string{"B", "D"}, res.Order[1:3])
	assert.Equal(t, "C", res.Order[3])

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "C", path[2])
}

func TestBFS_DirectedReachability(t *testing.T) {
	g := graph(t, true, [2]string{"A", "B"}, [2]string{"C", "A"})
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.True(t, res.Reached("B"))
	assert.False(t, res.Reached("C"))

	_, err = res.PathTo("C")
	assert.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := graph(t, true, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"A", "X"})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.False(t, res.Reached("D"))
	assert.True(t, res.Reached("C"))

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "X" }))
	require.NoError(t, err)
	assert.False(t, res.Reached("X"))
	assert.True(t, res.Reached("D"))
}

func TestBFS_OnVisitAbortsAndContextCancels(t *testing.T) {
	g := graph(t, true, [2]string{"A", "B"}, [2]string{"B", "C"})
	stop := errors.New("stop")

	var visited []string
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		visited = append(visited, id)
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, visited)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
