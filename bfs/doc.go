// Package bfs walks a dijkstra.GraphView breadth-first from a start vertex
// and reports hop counts, parent links and visit order.
//
// It ignores edge weights, so on a graph whose weights are all equal it
// yields the same reachability and the same (scaled) distances as the
// stepping Dijkstra engine. lvstep uses it for a cheap reachability summary
// before a run, and its tests use it as an independent reference on
// unit-weight fixtures.
//
// Determinism
//
//	Neighbours are taken from GraphView.OutgoingEdges in the order the view
//	returns them (edge ID order for core.Graph), so the visit sequence is
//	reproducible.
//
// Hooks
//
//   - OnVisit (when a vertex is dequeued; an error aborts the walk)
//   - FilterNeighbor (skip individual from→to hops)
//   - MaxDepth (d>0 limits the depth; 0 means no limit)
//   - WithContext (cancellation checked once per dequeued vertex)
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
