// Package core provides a thread-safe in-memory Graph that serves as the
// read-only graph view for the stepping shortest-path engine.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration:
//
//	Vertices()        lexicographic ID order (the vertex total order)
//	Edges()           creation order ("e1" < "e2" < "e10")
//	Neighbors(id)     creation order, stored orientation
//	OutgoingEdges(id) creation order, every edge oriented From == id
//	NeighborIDs(id)   unique, lexicographic
//
// Core methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	RemoveEdge(edgeID string) error
//	HasEdge(from, to string) bool
//	GetEdge(edgeID string) (*Edge, error)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge override without mixed-mode
//
// core stores whatever float64 weight it is given on a weighted graph.
// Consumers that require finite non-negative weights (dijkstra) check them
// when the edge is read.
package core
