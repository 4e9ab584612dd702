package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvstep/dijkstra"
)

// Span and attribute names used by TraceObserver.
const (
	RunSpanName = "dijkstra.run"

	AttrRunID     = "lvstep.run_id"
	AttrSource    = "lvstep.source"
	AttrStep      = "lvstep.step"
	AttrPhase     = "lvstep.phase"
	AttrVertex    = "lvstep.vertex"
	AttrEdgeID    = "lvstep.edge.id"
	AttrEdgeFrom  = "lvstep.edge.from"
	AttrEdgeTo    = "lvstep.edge.to"
	AttrWeight    = "lvstep.edge.weight"
	AttrDistance  = "lvstep.distance"
	AttrImproved  = "lvstep.improved"
	AttrFinalized = "lvstep.finalized"
	AttrSteps     = "lvstep.steps"
)

// TraceObserver turns step events into OpenTelemetry spans.
//
// Start opens a run span; every step becomes a child span named
// "dijkstra.<phase>" that is ended immediately (steps are points in time).
// The run span is ended by the step that completes the run, or by End.
// Without Start, step spans are roots.
type TraceObserver struct {
	tracer trace.Tracer

	mu     sync.Mutex
	ctx    context.Context
	run    trace.Span
	steps  int
	closed bool
}

// NewTraceObserver creates a TraceObserver using tracer, e.g.
// otel.Tracer("github.com/katalvlaran/lvstep").
func NewTraceObserver(tracer trace.Tracer) *TraceObserver {
	return &TraceObserver{tracer: tracer, ctx: context.Background()}
}

// Start opens the run span as a child of ctx.
func (o *TraceObserver) Start(ctx context.Context, runID, source string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ctx, o.run = o.tracer.Start(ctx, RunSpanName, trace.WithAttributes(
		attribute.String(AttrRunID, runID),
		attribute.String(AttrSource, source),
	))
	o.steps, o.closed = 0, false
}

// OnStep records ev as a span.
func (o *TraceObserver) OnStep(ev dijkstra.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, span := o.tracer.Start(o.ctx, "dijkstra."+ev.Phase.String())
	span.SetAttributes(
		attribute.String(AttrRunID, ev.RunID),
		attribute.Int(AttrStep, ev.Step),
		attribute.String(AttrPhase, ev.Phase.String()),
		attribute.String(AttrVertex, ev.Vertex),
		attribute.String(AttrDistance, dijkstra.FormatDistance(ev.Distance)),
		attribute.Bool(AttrFinalized, ev.Finalized),
	)
	if ev.Edge != nil {
		span.SetAttributes(
			attribute.String(AttrEdgeID, ev.Edge.ID),
			attribute.String(AttrEdgeFrom, ev.Edge.From),
			attribute.String(AttrEdgeTo, ev.Edge.To),
			attribute.Float64(AttrWeight, ev.Edge.Weight),
		)
	}
	if ev.Phase == dijkstra.PhaseRelax {
		span.SetAttributes(attribute.Bool(AttrImproved, ev.Improved))
	}
	span.End()

	o.steps = ev.Step
	if ev.Done {
		o.endLocked(nil)
	}
}

// End closes the run span if it is still open, marking it failed when err is non-nil.
func (o *TraceObserver) End(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.endLocked(err)
}

func (o *TraceObserver) endLocked(err error) {
	if o.run == nil || o.closed {
		return
	}
	o.run.SetAttributes(attribute.Int(AttrSteps, o.steps))
	if err != nil {
		o.run.RecordError(err)
		o.run.SetStatus(codes.Error, err.Error())
	} else {
		o.run.SetStatus(codes.Ok, "")
	}
	o.run.End()
	o.closed = true
}
