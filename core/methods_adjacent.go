// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, OutgoingEdges, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() and OutgoingEdges() sort by edge creation sequence.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to id under the neighborhood policy:
//   - Directed edges: only edges with e.From == id.
//   - Undirected edges: every incident edge, as stored (e.From may be the other end).
//     Self-loops appear once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	SortEdgesByID(out)

	return out, nil
}

// OutgoingEdges returns the edges leaving id, each oriented so that From == id.
//
// Directed edges are returned as stored. An undirected edge whose stored From
// is the other endpoint is returned as a mirrored copy (same ID, From/To
// swapped), so consumers can always read (From, To, Weight) as a directed arc.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) OutgoingEdges(id string) ([]*Edge, error) {
	incident, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	out := make([]*Edge, 0, len(incident))
	for _, e := range incident {
		if e.From == id {
			out = append(out, e)
			continue
		}
		out = append(out, &Edge{
			ID:       e.ID,
			From:     id,
			To:       e.From,
			Weight:   e.Weight,
			Directed: e.Directed,
		})
	}

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable over one
// outgoing edge from id, sorted lexicographically.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.OutgoingEdges(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for nid := range seen {
		out = append(out, nid)
	}
	sort.Strings(out)

	return out, nil
}

// OutDegree returns the number of edges OutgoingEdges(id) would return.
func (g *Graph) OutDegree(id string) (int, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}

// ensureAdjacency allocates the nested maps for from→to.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from from→to and, for undirected non-loops,
// from to→from, pruning buckets that become empty.
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after bulk removals.
// Must be called ONLY under muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
