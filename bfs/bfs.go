package bfs

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvstep/dijkstra"
)

type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g     dijkstra.GraphView
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Result
}

// BFS walks g breadth-first from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for view failures,
// ctx.Err() on cancellation, or the OnVisit error.
func BFS(g dijkstra.GraphView, start string, opts ...Option) (*Result, error) {
	if g == nil || (reflect.ValueOf(g).Kind() == reflect.Ptr && reflect.ValueOf(g).IsNil()) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	found := false
	for _, v := range vertices {
		if v == start {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := len(vertices)
	w := &walker{
		g:     g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	out, err := w.g.OutgoingEdges(item.id)
	if err != nil {
		return fmt.Errorf("%w: outgoing edges of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range out {
		if e == nil || !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; !seen {
			w.enqueue(e.To, next, item.id)
		}
	}

	return nil
}
