package observe

import "github.com/katalvlaran/lvstep/dijkstra"

type multi []dijkstra.Observer

// Multi returns an observer that forwards each event to every non-nil
// observer in order.
func Multi(observers ...dijkstra.Observer) dijkstra.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

func (m multi) OnStep(ev dijkstra.Event) {
	for _, o := range m {
		o.OnStep(ev)
	}
}
