// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/core"
)

// Common vertex IDs and weights used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"

	Weight0   = 0.0
	Weight1   = 1.0
	Weight2_5 = 2.5
	Weight4   = 4.0
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexA))
	assert.True(t, g.HasVertex(VertexA))

	// Duplicate insert is a no-op.
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexEmpty))
}

func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexD, VertexB, VertexA, VertexC} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD}, g.Vertices())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	t.Run("unweighted rejects weight", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge(VertexA, VertexB, Weight1)
		require.ErrorIs(t, err, core.ErrBadWeight)
		_, err = g.AddEdge(VertexA, VertexB, Weight0)
		require.NoError(t, err)
	})

	t.Run("loops", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge(VertexA, VertexA, Weight4)
		require.ErrorIs(t, err, core.ErrLoopNotAllowed)

		g = core.NewGraph(core.WithWeighted(), core.WithLoops())
		_, err = g.AddEdge(VertexA, VertexA, Weight4)
		require.NoError(t, err)
	})

	t.Run("multi edges", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
		_, err := g.AddEdge(VertexA, VertexB, Weight1)
		require.NoError(t, err)
		_, err = g.AddEdge(VertexA, VertexB, Weight2_5)
		require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

		g = core.NewGraph(core.WithWeighted(), core.WithDirected(true), core.WithMultiEdges())
		_, err = g.AddEdge(VertexA, VertexB, Weight1)
		require.NoError(t, err)
		_, err = g.AddEdge(VertexA, VertexB, Weight2_5)
		require.NoError(t, err)
		assert.Equal(t, 2, g.EdgeCount())
	})

	t.Run("mixed overrides", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge(VertexA, VertexB, Weight1, core.WithEdgeDirected(true))
		require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)

		g = core.NewMixedGraph(core.WithWeighted())
		eid, err := g.AddEdge(VertexA, VertexB, Weight1, core.WithEdgeDirected(true))
		require.NoError(t, err)
		e, err := g.GetEdge(eid)
		require.NoError(t, err)
		assert.True(t, e.Directed)
	})

	t.Run("empty endpoint", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge(VertexEmpty, VertexB, Weight1)
		require.ErrorIs(t, err, core.ErrEmptyVertexID)
	})
}

func TestGraph_EdgesCreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true), core.WithMultiEdges())
	var ids []string
	for i := 0; i < 12; i++ {
		eid, err := g.AddEdge(VertexA, VertexB, float64(i))
		require.NoError(t, err)
		ids = append(ids, eid)
	}

	got := g.Edges()
	require.Len(t, got, len(ids))
	for i, e := range got {
		assert.Equal(t, ids[i], e.ID, "position %d", i)
	}
	assert.True(t, core.EdgeIDLess("e2", "e10"))
	assert.True(t, core.EdgeIDLess("e9", "custom"))
	assert.False(t, core.EdgeIDLess("zz", "e1"))
}

func TestGraph_OutgoingEdgesDirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = g.AddEdge(VertexA, VertexB, Weight1)
	_, _ = g.AddEdge(VertexB, VertexC, Weight2_5)
	_, _ = g.AddEdge(VertexC, VertexA, Weight4)

	out, err := g.OutgoingEdges(VertexB)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, VertexB, out[0].From)
	assert.Equal(t, VertexC, out[0].To)
	assert.Equal(t, Weight2_5, out[0].Weight)

	_, err = g.OutgoingEdges(VertexD)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.OutgoingEdges(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_OutgoingEdgesUndirectedAreOriented(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge(VertexA, VertexB, Weight2_5)
	require.NoError(t, err)

	fromB, err := g.OutgoingEdges(VertexB)
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, eid, fromB[0].ID)
	assert.Equal(t, VertexB, fromB[0].From)
	assert.Equal(t, VertexA, fromB[0].To)

	// The stored edge keeps its original orientation.
	stored, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, VertexA, stored.From)

	ids, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA}, ids)
}

func TestGraph_SelfLoopAppearsOnce(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge(VertexA, VertexA, Weight4)
	require.NoError(t, err)

	out, err := g.OutgoingEdges(VertexA)
	require.NoError(t, err)
	require.Len(t, out, 1)
	deg, err := g.OutDegree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestGraph_RemoveEdgeAndVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	e1, _ := g.AddEdge(VertexA, VertexB, Weight1)
	_, _ = g.AddEdge(VertexB, VertexC, Weight1)

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))

	require.NoError(t, g.RemoveVertex(VertexC))
	assert.Equal(t, 0, g.EdgeCount())
	out, err := g.OutgoingEdges(VertexB)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGraph_Stats(t *testing.T) {
	g := core.NewMixedGraph(core.WithWeighted())
	_, _ = g.AddEdge(VertexA, VertexB, Weight1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge(VertexB, VertexC, Weight1)

	s := g.Stats()
	assert.True(t, s.Weighted)
	assert.True(t, s.MixedMode)
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 2, s.EdgeCount)
	assert.Equal(t, 1, s.DirectedEdgeCount)
	assert.Equal(t, 1, s.UndirectedEdgeCount)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const workers = 16
	const perWorker = 50

	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := g.AddEdge(VertexA, VertexB, Weight1); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, workers*perWorker, g.EdgeCount())
	seen := make(map[string]bool)
	for _, e := range g.Edges() {
		require.False(t, seen[e.ID], "duplicate edge id %s", e.ID)
		seen[e.ID] = true
	}
}
