package dijkstra

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvstep/core"
)

// DistanceMap maps vertex ID to the best known distance from the source.
// Vertices not yet reached hold +Inf.
type DistanceMap map[string]float64

// Clone returns an independent copy.
func (d DistanceMap) Clone() DistanceMap {
	out := make(DistanceMap, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// Reachable reports whether id has a finite distance.
func (d DistanceMap) Reachable(id string) bool {
	v, ok := d[id]

	return ok && !math.IsInf(v, 1)
}

// newDistanceMap sets every vertex to +Inf.
func newDistanceMap(order []string) DistanceMap {
	d := make(DistanceMap, len(order))
	for _, v := range order {
		d[v] = math.Inf(1)
	}

	return d
}

// unvisitedSet tracks vertices not yet finalized. order is the vertex total
// order, so a linear scan with strict "<" breaks distance ties by that order.
type unvisitedSet struct {
	order   []string
	members map[string]struct{}
}

func newUnvisitedSet(order []string) *unvisitedSet {
	s := &unvisitedSet{
		order:   order,
		members: make(map[string]struct{}, len(order)),
	}
	for _, v := range order {
		s.members[v] = struct{}{}
	}

	return s
}

func (s *unvisitedSet) len() int { return len(s.members) }

func (s *unvisitedSet) has(v string) bool {
	_, ok := s.members[v]

	return ok
}

func (s *unvisitedSet) remove(v string) { delete(s.members, v) }

// min returns the unvisited vertex with the smallest distance, first in
// vertex order among equals. +Inf vertices are eligible. O(V).
func (s *unvisitedSet) min(dist DistanceMap) (string, bool) {
	var (
		best  string
		bestD = math.Inf(1)
		found bool
	)
	for _, v := range s.order {
		if !s.has(v) {
			continue
		}
		if d := dist[v]; !found || d < bestD {
			best, bestD, found = v, d, true
		}
	}

	return best, found
}

// list returns the unvisited vertices in vertex order.
func (s *unvisitedSet) list() []string {
	out := make([]string, 0, len(s.members))
	for _, v := range s.order {
		if s.has(v) {
			out = append(out, v)
		}
	}

	return out
}

// edgeQueue is a vertex's pending outgoing edges. It is filled once and only
// ever consumed from the front.
type edgeQueue struct {
	edges []*core.Edge
	head  int
}

func newEdgeQueue(edges []*core.Edge, order EdgeOrder) *edgeQueue {
	q := &edgeQueue{edges: make([]*core.Edge, len(edges))}
	copy(q.edges, edges)
	sort.SliceStable(q.edges, func(i, j int) bool { return order.less(q.edges[i], q.edges[j]) })

	return q
}

func (q *edgeQueue) len() int { return len(q.edges) - q.head }

func (q *edgeQueue) pop() (*core.Edge, bool) {
	if q.len() == 0 {
		return nil, false
	}
	e := q.edges[q.head]
	q.edges[q.head] = nil
	q.head++

	return e, true
}

// remaining returns a copy of the pending edges, front first.
func (q *edgeQueue) remaining() []*core.Edge {
	out := make([]*core.Edge, q.len())
	copy(out, q.edges[q.head:])

	return out
}
