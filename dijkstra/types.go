package dijkstra

import (
	"github.com/katalvlaran/lvstep/core"
)

// GraphView is the read-only graph surface the engine needs.
//
// Vertices must return every vertex exactly once, in the vertex total order
// used for tie-breaking and reports. OutgoingEdges must return the edges
// leaving id oriented From == id. *core.Graph satisfies GraphView.
//
// The view must not change while an Engine built on it is stepping.
type GraphView interface {
	Vertices() []string
	OutgoingEdges(id string) ([]*core.Edge, error)
}

// Phase is the stage the engine will execute on the next Step.
type Phase int

const (
	// PhaseSelectVertex picks the unvisited vertex with the smallest tentative distance.
	PhaseSelectVertex Phase = iota

	// PhaseSelectNeighbor pops the next pending outgoing edge of the current vertex.
	PhaseSelectNeighbor

	// PhaseRelax relaxes the current edge.
	PhaseRelax
)

func (p Phase) String() string {
	switch p {
	case PhaseSelectVertex:
		return "select_vertex"
	case PhaseSelectNeighbor:
		return "select_neighbor"
	case PhaseRelax:
		return "relax"
	default:
		return "unknown"
	}
}

// EdgeOrder selects how each vertex's pending edge queue is ordered.
// Every order is total, so stepping is reproducible across runs.
type EdgeOrder int

const (
	// EdgeOrderByWeight: weight asc, then target ID, then edge ID. Default.
	EdgeOrderByWeight EdgeOrder = iota

	// EdgeOrderByTarget: target ID, then weight, then edge ID.
	EdgeOrderByTarget

	// EdgeOrderByID: edge ID only (creation order for core graphs).
	EdgeOrderByID
)

func (o EdgeOrder) String() string {
	switch o {
	case EdgeOrderByWeight:
		return "weight"
	case EdgeOrderByTarget:
		return "target"
	case EdgeOrderByID:
		return "id"
	default:
		return "unknown"
	}
}

// ParseEdgeOrder maps "weight", "target" or "id" to an EdgeOrder.
func ParseEdgeOrder(s string) (EdgeOrder, bool) {
	switch s {
	case "weight", "":
		return EdgeOrderByWeight, true
	case "target":
		return EdgeOrderByTarget, true
	case "id":
		return EdgeOrderByID, true
	default:
		return EdgeOrderByWeight, false
	}
}

// less reports whether a must be examined before b under the order.
func (o EdgeOrder) less(a, b *core.Edge) bool {
	switch o {
	case EdgeOrderByTarget:
		if a.To != b.To {
			return a.To < b.To
		}
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
	case EdgeOrderByID:
		// fall through to the ID tie-break
	default:
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.To != b.To {
			return a.To < b.To
		}
	}

	return core.EdgeIDLess(a.ID, b.ID)
}

// Options configures the stepping engine.
//
// Source               – starting vertex ID; used by Dijkstra, set from the argument by New.
// ReturnPath           – record predecessor links for path reconstruction.
// EdgeOrder            – ordering of each vertex's pending edge queue.
// AllowNegativeWeights – accept negative weights (distances are then unspecified).
// RunID                – correlation id stamped on events; a UUID when empty.
// Observers            – receive an Event after every successful step.
type Options struct {
	Source               string
	ReturnPath           bool
	EdgeOrder            EdgeOrder
	AllowNegativeWeights bool
	RunID                string
	Observers            []Observer
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// Source sets the starting vertex ID for Dijkstra.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables predecessor tracking.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEdgeOrder sets the pending edge queue ordering.
func WithEdgeOrder(order EdgeOrder) Option {
	return func(o *Options) {
		o.EdgeOrder = order
	}
}

// WithAllowNegativeWeights disables negative-weight rejection. Dijkstra's
// precondition no longer holds, so the resulting distances are unspecified.
func WithAllowNegativeWeights() Option {
	return func(o *Options) {
		o.AllowNegativeWeights = true
	}
}

// WithRunID fixes the correlation id stamped on events.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// WithObserver registers an observer. Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observers = append(o.Observers, obs)
		}
	}
}

// DefaultOptions returns Options initialized with defaults for the given source:
// no predecessors, EdgeOrderByWeight, negative weights rejected, generated RunID.
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		EdgeOrder: EdgeOrderByWeight,
	}
}
