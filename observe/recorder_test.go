package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/observe"
)

func TestRecorder_CapturesEveryStep(t *testing.T) {
	rec := observe.NewRecorder()
	e := runWith(t, rec)

	events := rec.Events()
	require.Len(t, events, e.Steps())
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Step)
		assert.Equal(t, "run-1", ev.RunID)
	}
	assert.Len(t, rec.Filter(dijkstra.PhaseSelectVertex), 3)
	assert.Len(t, rec.Filter(dijkstra.PhaseSelectNeighbor), 3)
	assert.Len(t, rec.Filter(dijkstra.PhaseRelax), 3)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.True(t, last.Done)
	assert.Equal(t, "C", last.Vertex)
	assert.Equal(t, 0, last.Unvisited)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	_, ok = rec.Last()
	assert.False(t, ok)
}

func TestRecorder_EventsIsACopy(t *testing.T) {
	rec := observe.NewRecorder()
	rec.OnStep(dijkstra.Event{Step: 1})
	evs := rec.Events()
	evs[0].Step = 42
	assert.Equal(t, 1, rec.Events()[0].Step)
}

func TestMulti_FansOutAndSkipsNil(t *testing.T) {
	a, b := observe.NewRecorder(), observe.NewRecorder()
	calls := 0
	m := observe.Multi(a, nil, b, dijkstra.ObserverFunc(func(dijkstra.Event) { calls++ }))

	e := runWith(t, m)
	assert.Equal(t, e.Steps(), a.Len())
	assert.Equal(t, a.Events(), b.Events())
	assert.Equal(t, e.Steps(), calls)
}
