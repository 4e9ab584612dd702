// Package dijkstra implements single-source shortest paths as an externally
// steppable state machine.
//
// Overview:
//
//   - Engine decomposes Dijkstra's algorithm into three phases: select the
//     unvisited vertex with the smallest tentative distance, select its next
//     pending outgoing edge, and relax that edge.
//   - Each call to Engine.Step performs exactly one of those units of work and
//     returns. Between calls the caller may read Distances, Phase,
//     CurrentVertex, CurrentEdge and Pending, e.g. to animate the run.
//   - Runner drives an Engine in bulk under a step budget and a context, with
//     optional Pre/Post step callbacks.
//   - Dijkstra is the one-shot wrapper: build, run to completion, return maps.
//
// Determinism:
//
//   - Vertex ties are broken by the order GraphView.Vertices returns
//     (*core.Graph returns IDs sorted lexicographically).
//   - Each vertex's pending edges are ordered once at construction by the
//     configured EdgeOrder (weight, then target, then edge ID by default).
//   - Given the same graph and options, two engines produce the same step
//     sequence, step for step.
//
// Step accounting:
//
//   - A vertex with no outgoing edges is selected and finalized in one step.
//   - Every outgoing edge costs two steps: selection and relaxation. The
//     relaxation of a vertex's last edge also finalizes the vertex.
//   - A complete run therefore takes exactly |V| + 2·(total out-degree) steps.
//
// Invariants:
//
//   - Distances never increase; every intermediate value is an upper bound on
//     the true shortest distance, so a run stopped early still yields
//     meaningful partial results.
//   - distance[source] is set to 0 once, when the run starts (first Step or
//     Run). Construction leaves every distance at +Inf.
//   - Unreachable vertices are still selected once (at +Inf) and keep +Inf.
//
// Error handling:
//
//   - *InvalidInputError (errors.Is ErrInvalidInput): nil graph, empty or
//     unknown source, zero-value Engine.
//   - *MalformedEdgeError (errors.Is ErrMalformedEdge): NaN/Inf weight,
//     negative weight (unless WithAllowNegativeWeights), unknown target, or an
//     edge not starting at the vertex it was listed under. Several bad edges
//     are reported together as a *multierror.Error.
//
// Complexity:
//
//   - Construction: O(V + E log E)
//   - Vertex selection: O(V) per step, O(V²) per run
//   - Edge selection and relaxation: O(1)
//
// Concurrency:
//
//   - An Engine is owned by one goroutine. Observers run synchronously inside
//     Step on that goroutine.
package dijkstra
