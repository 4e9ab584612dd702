package dijkstra

import "github.com/katalvlaran/lvstep/core"

// Event describes one completed step.
//
// Phase is the phase that was executed; Next is the phase the following Step
// will execute. Edge is nil for vertex selections. Distance is the tentative
// distance of Vertex after a vertex selection, and of Edge.To after a
// relaxation or neighbour selection.
type Event struct {
	RunID     string
	Step      int
	Phase     Phase
	Next      Phase
	Vertex    string
	Edge      *core.Edge
	Distance  float64
	Improved  bool // relaxation lowered Edge.To's distance
	Finalized bool // Vertex left the unvisited set during this step
	Unvisited int  // vertices still unvisited after this step
	Done      bool // the run is complete after this step
}

// Observer receives step events. Observers are called synchronously on the
// goroutine driving the engine, in registration order, and must not call
// back into the engine's mutating methods.
type Observer interface {
	OnStep(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// OnStep calls f(ev).
func (f ObserverFunc) OnStep(ev Event) { f(ev) }
