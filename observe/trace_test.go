package observe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/observe"
)

func newTracer(t *testing.T) (*observe.TraceObserver, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return observe.NewTraceObserver(tp.Tracer("lvstep-test")), exporter
}

func attrMap(kvs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value
	}

	return m
}

func TestTraceObserver_SpanPerStepUnderRunSpan(t *testing.T) {
	obs, exporter := newTracer(t)
	obs.Start(context.Background(), "run-1", "A")
	runWith(t, obs)

	spans := exporter.GetSpans()
	require.Len(t, spans, 10)

	// The run span ends last.
	run := spans[len(spans)-1]
	assert.Equal(t, observe.RunSpanName, run.Name)
	assert.Equal(t, codes.Ok, run.Status.Code)
	runAttrs := attrMap(run.Attributes)
	assert.Equal(t, "A", runAttrs[observe.AttrSource].AsString())
	assert.Equal(t, int64(9), runAttrs[observe.AttrSteps].AsInt64())

	names := map[string]int{}
	for _, s := range spans[:9] {
		names[s.Name]++
		assert.Equal(t, run.SpanContext.SpanID(), s.Parent.SpanID())
		assert.Equal(t, run.SpanContext.TraceID(), s.SpanContext.TraceID())
	}
	assert.Equal(t, map[string]int{
		"dijkstra.select_vertex":   3,
		"dijkstra.select_neighbor": 3,
		"dijkstra.relax":           3,
	}, names)

	relax := attrMap(spans[2].Attributes)
	assert.Equal(t, "relax", relax[observe.AttrPhase].AsString())
	assert.Equal(t, "A", relax[observe.AttrEdgeFrom].AsString())
	assert.Equal(t, "B", relax[observe.AttrEdgeTo].AsString())
	assert.Equal(t, 1.0, relax[observe.AttrWeight].AsFloat64())
	assert.True(t, relax[observe.AttrImproved].AsBool())
	assert.Equal(t, int64(3), relax[observe.AttrStep].AsInt64())
}

func TestTraceObserver_EndRecordsError(t *testing.T) {
	obs, exporter := newTracer(t)
	obs.Start(context.Background(), "run-2", "A")
	obs.OnStep(dijkstra.Event{RunID: "run-2", Step: 1, Phase: dijkstra.PhaseSelectVertex, Vertex: "A"})
	obs.End(errors.New("boom"))
	obs.End(nil) // already closed

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	run := spans[1]
	assert.Equal(t, codes.Error, run.Status.Code)
	assert.Equal(t, "boom", run.Status.Description)
	require.Len(t, run.Events, 1)
	assert.Equal(t, "exception", run.Events[0].Name)
}

func TestTraceObserver_WithoutStartEmitsRootSpans(t *testing.T) {
	obs, exporter := newTracer(t)
	runWith(t, obs)
	obs.End(nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 9)
	for _, s := range spans {
		assert.False(t, s.Parent.IsValid())
	}
}
