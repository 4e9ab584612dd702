package observe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
)

// chain is A→B (1), B→C (2), A→C (5): nine steps, three improving relaxations.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func runWith(t *testing.T, obs dijkstra.Observer) *dijkstra.Engine {
	t.Helper()
	e, err := dijkstra.New(chain(t), "A", dijkstra.WithObserver(obs), dijkstra.WithRunID("run-1"))
	require.NoError(t, err)
	_, err = e.Run()
	require.NoError(t, err)

	return e
}
