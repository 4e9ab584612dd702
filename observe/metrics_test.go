package observe_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstep/observe"
)

func TestMetrics_CountsOneRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observe.NewMetrics(reg)
	runWith(t, m)

	expected := `
# HELP lvstep_steps_total Engine steps executed, by phase
# TYPE lvstep_steps_total counter
lvstep_steps_total{phase="relax"} 3
lvstep_steps_total{phase="select_neighbor"} 3
lvstep_steps_total{phase="select_vertex"} 3
# HELP lvstep_relaxations_total Edge relaxations, by whether the target distance improved
# TYPE lvstep_relaxations_total counter
lvstep_relaxations_total{result="improved"} 3
# HELP lvstep_vertices_finalized_total Vertices removed from the unvisited set
# TYPE lvstep_vertices_finalized_total counter
lvstep_vertices_finalized_total 3
# HELP lvstep_unvisited_vertices Vertices still unvisited after the most recent step
# TYPE lvstep_unvisited_vertices gauge
lvstep_unvisited_vertices 0
# HELP lvstep_runs_completed_total Runs that finalized every vertex
# TYPE lvstep_runs_completed_total counter
lvstep_runs_completed_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"lvstep_steps_total",
		"lvstep_relaxations_total",
		"lvstep_vertices_finalized_total",
		"lvstep_unvisited_vertices",
		"lvstep_runs_completed_total",
	))
	n, err := testutil.GatherAndCount(reg, "lvstep_run_steps")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_AccumulatesAcrossRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observe.NewMetrics(reg)
	runWith(t, m)
	runWith(t, m)

	count, err := testutil.GatherAndCount(reg, "lvstep_runs_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "lvstep_runs_completed_total" {
			assert.Equal(t, 2.0, f.GetMetric()[0].GetCounter().GetValue())
		}
		if f.GetName() == "lvstep_run_steps" {
			assert.Equal(t, uint64(2), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observe.NewMetrics(reg)
	assert.Panics(t, func() { observe.NewMetrics(reg) })
}
