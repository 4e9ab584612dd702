// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: convenience constructor and read-only policy getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// NewMixedGraph creates a new Graph that allows per-edge directedness overrides
// via WithEdgeDirected, applying WithMixedEdges() before the caller's options.
//
// The caller's opts slice is not mutated.
// Complexity: O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly created edges.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge Directed overrides are permitted.
// Complexity: O(1). Concurrency: muVert read lock.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault bool
	Weighted        bool
	AllowsMulti     bool
	AllowsLoops     bool
	MixedMode       bool

	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// Stats produces a deterministic snapshot of flags and counts.
//
// The two locks are taken one after the other, never together, so the
// snapshot is consistent per phase (flags/vertices, then edges).
// Complexity: O(V+E) for the edge classification scan.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	var e *Edge
	for _, e = range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
