package observe

import (
	"sync"

	"github.com/katalvlaran/lvstep/dijkstra"
)

// Recorder keeps every event it sees. It is safe to read from another
// goroutine while the engine is stepping, e.g. from a UI refresh loop.
type Recorder struct {
	mu     sync.RWMutex
	events []dijkstra.Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStep appends ev.
func (r *Recorder) OnStep(ev dijkstra.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events, oldest first.
func (r *Recorder) Events() []dijkstra.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dijkstra.Event, len(r.events))
	copy(out, r.events)

	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events)
}

// Last returns the most recent event, if any.
func (r *Recorder) Last() (dijkstra.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.events) == 0 {
		return dijkstra.Event{}, false
	}

	return r.events[len(r.events)-1], true
}

// Filter returns the recorded events of one phase.
func (r *Recorder) Filter(ph dijkstra.Phase) []dijkstra.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []dijkstra.Event
	for _, ev := range r.events {
		if ev.Phase == ph {
			out = append(out, ev)
		}
	}

	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
