package dijkstra

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/lvstep/core"
)

// Engine is Dijkstra's algorithm as an externally driven state machine.
//
// Every call to Step performs exactly one unit of work (select a vertex,
// select an edge, or relax an edge) and returns control to the caller, who
// may inspect Distances, Phase, CurrentVertex and CurrentEdge in between.
// All mutable state lives on the Engine; nothing is shared between engines.
//
// An Engine is not safe for concurrent use. Drive it from one goroutine.
type Engine struct {
	opts   Options
	source string
	runID  string

	order     []string // vertex total order
	dist      DistanceMap
	prev      map[string]string // nil unless ReturnPath
	unvisited *unvisitedSet
	queues    map[string]*edgeQueue

	phase     Phase
	curVertex string
	hasVertex bool
	curEdge   *core.Edge

	started bool
	steps   int
	ready   bool
}

// New builds an engine over g starting at source.
//
// Construction reads the vertex set and every vertex's outgoing edges once,
// validates them, and orders each pending edge queue (Options.EdgeOrder).
// All distances start at +Inf; the source is set to 0 when the run starts
// (first Step or Run), not here.
//
// Errors:
//   - *InvalidInputError wrapping ErrNilGraph, ErrEmptySource or ErrVertexNotFound.
//   - *MalformedEdgeError for one bad edge, or a *multierror.Error holding one
//     *MalformedEdgeError per bad edge; errors.Is(err, ErrMalformedEdge) holds for both.
//   - The graph view's own error if OutgoingEdges fails, wrapped with context.
//
// Complexity: O(V + E log E).
func New(g GraphView, source string, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions(source)
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Source = source

	if isNilView(g) {
		return nil, &InvalidInputError{Op: "New", Err: ErrNilGraph}
	}
	if source == "" {
		return nil, &InvalidInputError{Op: "New", Err: ErrEmptySource}
	}

	order := dedupe(g.Vertices())
	inGraph := make(map[string]struct{}, len(order))
	for _, v := range order {
		inGraph[v] = struct{}{}
	}
	if _, ok := inGraph[source]; !ok {
		return nil, &InvalidInputError{Op: "New", Vertex: source, Err: ErrVertexNotFound}
	}

	outgoing := make(map[string][]*core.Edge, len(order))
	var malformed *multierror.Error
	for _, v := range order {
		edges, err := g.OutgoingEdges(v)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: reading outgoing edges of %q: %w", v, err)
		}
		for _, e := range edges {
			if merr := checkEdge(e, v, inGraph, cfg.AllowNegativeWeights); merr != nil {
				malformed = multierror.Append(malformed, merr)
			}
		}
		outgoing[v] = edges
	}
	if malformed != nil {
		if len(malformed.Errors) == 1 {
			return nil, malformed.Errors[0]
		}

		return nil, malformed.ErrorOrNil()
	}

	queues := make(map[string]*edgeQueue, len(order))
	for _, v := range order {
		queues[v] = newEdgeQueue(outgoing[v], cfg.EdgeOrder)
	}

	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	e := &Engine{
		opts:      cfg,
		source:    source,
		runID:     runID,
		order:     order,
		dist:      newDistanceMap(order),
		unvisited: newUnvisitedSet(order),
		queues:    queues,
		phase:     PhaseSelectVertex,
		ready:     true,
	}
	if cfg.ReturnPath {
		e.prev = make(map[string]string, len(order))
	}

	return e, nil
}

// Step performs one unit of work for the current phase and advances it.
//
//   - PhaseSelectVertex: take the unvisited vertex with the smallest distance
//     (ties by vertex order). A vertex without outgoing edges is finalized in
//     the same step; otherwise the next phase is PhaseSelectNeighbor.
//   - PhaseSelectNeighbor: pop the front pending edge of the current vertex;
//     next phase PhaseRelax.
//   - PhaseRelax: dist[t] = min(dist[t], dist[s]+w). If the current vertex has
//     no pending edges left it is finalized and the next phase is
//     PhaseSelectVertex, otherwise PhaseSelectNeighbor.
//
// Step on a finished run is a no-op returning nil. A full run takes exactly
// |V| + 2·(total out-degree) steps.
//
// Errors: *InvalidInputError (ErrNotInitialized) for an Engine not built by
// New; *MalformedEdgeError if the edge being relaxed no longer has a valid
// weight. A failed step changes nothing and is not counted.
func (e *Engine) Step() error {
	if e == nil || !e.ready {
		return &InvalidInputError{Op: "Step", Err: ErrNotInitialized}
	}
	if e.Done() {
		return nil
	}
	e.begin()

	var (
		ev  Event
		err error
	)
	switch e.phase {
	case PhaseSelectVertex:
		ev = e.selectUnvisitedVertex()
	case PhaseSelectNeighbor:
		ev = e.selectNearestNeighbor()
	case PhaseRelax:
		ev, err = e.relax()
	}
	if err != nil {
		return err
	}

	e.steps++
	ev.RunID = e.runID
	ev.Step = e.steps
	ev.Next = e.phase
	ev.Unvisited = e.unvisited.len()
	ev.Done = e.Done()
	e.emit(ev)

	return nil
}

// Run starts the run and steps until every vertex is finalized, returning a
// snapshot of the final distances. On error the snapshot holds the distances
// computed so far, each an upper bound on the true distance.
func (e *Engine) Run() (DistanceMap, error) {
	if e == nil || !e.ready {
		return nil, &InvalidInputError{Op: "Run", Err: ErrNotInitialized}
	}
	e.begin()
	for !e.Done() {
		if err := e.Step(); err != nil {
			return e.Distances(), err
		}
	}

	return e.Distances(), nil
}

// begin sets the source distance to 0, once per engine.
func (e *Engine) begin() {
	if e.started {
		return
	}
	e.dist[e.source] = 0
	e.started = true
}

func (e *Engine) selectUnvisitedVertex() Event {
	v, _ := e.unvisited.min(e.dist)
	e.curVertex, e.hasVertex = v, true
	e.curEdge = nil

	ev := Event{Phase: PhaseSelectVertex, Vertex: v, Distance: e.dist[v]}
	if e.queues[v].len() == 0 {
		e.finalize(v)
		ev.Finalized = true

		return ev
	}
	e.phase = PhaseSelectNeighbor

	return ev
}

func (e *Engine) selectNearestNeighbor() Event {
	v := e.curVertex
	edge, ok := e.queues[v].pop()
	if !ok {
		// Unreachable through Step: a vertex only enters this phase with edges pending.
		e.finalize(v)

		return Event{Phase: PhaseSelectNeighbor, Vertex: v, Distance: e.dist[v], Finalized: true}
	}
	e.curEdge = edge
	e.phase = PhaseRelax

	return Event{Phase: PhaseSelectNeighbor, Vertex: v, Edge: edge, Distance: e.dist[edge.To]}
}

func (e *Engine) relax() (Event, error) {
	s, edge := e.curVertex, e.curEdge
	if err := CheckWeight(edge.Weight, e.opts.AllowNegativeWeights); err != nil {
		return Event{}, &MalformedEdgeError{EdgeID: edge.ID, From: edge.From, To: edge.To, Weight: edge.Weight, Err: err}
	}

	t := edge.To
	ev := Event{Phase: PhaseRelax, Vertex: s, Edge: edge}
	if cand := e.dist[s] + edge.Weight; cand < e.dist[t] {
		e.dist[t] = cand
		if e.prev != nil {
			e.prev[t] = s
		}
		ev.Improved = true
	}
	ev.Distance = e.dist[t]

	if e.queues[s].len() == 0 {
		e.finalize(s)
		ev.Finalized = true
	} else {
		e.phase = PhaseSelectNeighbor
	}

	return ev, nil
}

// finalize removes v from the unvisited set and returns to vertex selection.
func (e *Engine) finalize(v string) {
	e.unvisited.remove(v)
	e.phase = PhaseSelectVertex
}

func (e *Engine) emit(ev Event) {
	for _, obs := range e.opts.Observers {
		obs.OnStep(ev)
	}
}

// Done reports whether every vertex has been finalized.
func (e *Engine) Done() bool {
	return e != nil && e.ready && e.unvisited.len() == 0
}

// Phase returns the phase the next Step will execute.
func (e *Engine) Phase() Phase { return e.phase }

// Steps returns the number of successful steps performed so far.
func (e *Engine) Steps() int { return e.steps }

// Source returns the source vertex ID.
func (e *Engine) Source() string { return e.source }

// RunID returns the correlation id stamped on this engine's events.
func (e *Engine) RunID() string { return e.runID }

// Started reports whether the source distance has been set.
func (e *Engine) Started() bool { return e.started }

// CurrentVertex returns the vertex selected most recently, if any.
func (e *Engine) CurrentVertex() (string, bool) { return e.curVertex, e.hasVertex }

// CurrentEdge returns the edge selected most recently for the current vertex.
// It is cleared on each vertex selection.
func (e *Engine) CurrentEdge() (*core.Edge, bool) { return e.curEdge, e.curEdge != nil }

// Distances returns a snapshot of the distance map. Safe to call between steps;
// every value is an upper bound on the true distance and never increases.
func (e *Engine) Distances() DistanceMap { return e.dist.Clone() }

// Distance returns the current distance of id.
func (e *Engine) Distance(id string) (float64, bool) {
	d, ok := e.dist[id]

	return d, ok
}

// Predecessors returns a copy of the predecessor links, or nil when the
// engine was built without WithReturnPath.
func (e *Engine) Predecessors() map[string]string {
	if e.prev == nil {
		return nil
	}
	out := make(map[string]string, len(e.prev))
	for k, v := range e.prev {
		out[k] = v
	}

	return out
}

// Unvisited returns the vertices not yet finalized, in vertex order.
func (e *Engine) Unvisited() []string { return e.unvisited.list() }

// Visited reports whether id has been finalized.
func (e *Engine) Visited(id string) bool {
	_, known := e.queues[id]

	return known && !e.unvisited.has(id)
}

// Pending returns the edges of id not yet examined, front first.
func (e *Engine) Pending(id string) []*core.Edge {
	q, ok := e.queues[id]
	if !ok {
		return nil
	}

	return q.remaining()
}

// Vertices returns the vertex total order the engine uses.
func (e *Engine) Vertices() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)

	return out
}

// Result returns a read-only view of the current distances (final once Done).
func (e *Engine) Result() *Result {
	return &Result{
		Source: e.source,
		Order:  e.Vertices(),
		Dist:   e.Distances(),
		Prev:   e.Predecessors(),
	}
}

// checkEdge validates one outgoing edge of v.
func checkEdge(e *core.Edge, v string, inGraph map[string]struct{}, allowNegative bool) error {
	if e == nil {
		return &MalformedEdgeError{From: v, Err: ErrMisorientedEdge}
	}
	if e.From != v {
		return &MalformedEdgeError{EdgeID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Err: ErrMisorientedEdge}
	}
	if _, ok := inGraph[e.To]; !ok {
		return &MalformedEdgeError{EdgeID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Err: ErrUnknownTarget}
	}
	if err := CheckWeight(e.Weight, allowNegative); err != nil {
		return &MalformedEdgeError{EdgeID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Err: err}
	}

	return nil
}

func isNilView(g GraphView) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
