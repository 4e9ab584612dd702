package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvstep/dijkstra"
)

// Metrics exports engine progress as Prometheus metrics.
//
// Metrics exposed (all namespaced with "lvstep_"):
//
//  1. steps_total (counter), label phase: steps executed per phase.
//  2. relaxations_total (counter), label result (improved|unchanged).
//  3. vertices_finalized_total (counter).
//  4. unvisited_vertices (gauge): vertices still unvisited after the last step.
//  5. runs_completed_total (counter).
//  6. run_steps (histogram): steps per completed run.
//
// Expose via HTTP:
//
//	registry := prometheus.NewRegistry()
//	m := observe.NewMetrics(registry)
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
type Metrics struct {
	steps       *prometheus.CounterVec
	relaxations *prometheus.CounterVec
	finalized   prometheus.Counter
	unvisited   prometheus.Gauge
	completed   prometheus.Counter
	runSteps    prometheus.Histogram
}

// NewMetrics creates and registers all metrics with registry
// (prometheus.DefaultRegisterer if nil).
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvstep",
			Name:      "steps_total",
			Help:      "Engine steps executed, by phase",
		}, []string{"phase"}),
		relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvstep",
			Name:      "relaxations_total",
			Help:      "Edge relaxations, by whether the target distance improved",
		}, []string{"result"}),
		finalized: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lvstep",
			Name:      "vertices_finalized_total",
			Help:      "Vertices removed from the unvisited set",
		}),
		unvisited: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvstep",
			Name:      "unvisited_vertices",
			Help:      "Vertices still unvisited after the most recent step",
		}),
		completed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lvstep",
			Name:      "runs_completed_total",
			Help:      "Runs that finalized every vertex",
		}),
		runSteps: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lvstep",
			Name:      "run_steps",
			Help:      "Steps taken by each completed run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// OnStep updates the metrics for ev.
func (m *Metrics) OnStep(ev dijkstra.Event) {
	m.steps.WithLabelValues(ev.Phase.String()).Inc()
	if ev.Phase == dijkstra.PhaseRelax {
		result := "unchanged"
		if ev.Improved {
			result = "improved"
		}
		m.relaxations.WithLabelValues(result).Inc()
	}
	if ev.Finalized {
		m.finalized.Inc()
	}
	m.unvisited.Set(float64(ev.Unvisited))
	if ev.Done {
		m.completed.Inc()
		m.runSteps.Observe(float64(ev.Step))
	}
}
