package dijkstra

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g in one call. It builds an Engine and runs it to
// completion, so results are identical to stepping by hand.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if WithReturnPath() was given (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  *InvalidInputError or *MalformedEdgeError (see New).
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. Every edge must have a finite weight, non-negative unless
//     WithAllowNegativeWeights() is given (ErrNonFiniteWeight, ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² + E log E) (array-based vertex selection)
//   - Space: O(V + E)
func Dijkstra(g GraphView, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Resolve the source from the options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, &InvalidInputError{Op: "Dijkstra", Err: ErrEmptySource}
	}

	// 2) Build and run the engine
	e, err := New(g, cfg.Source, opts...)
	if err != nil {
		return nil, nil, err
	}
	dist, err := e.Run()
	if err != nil {
		return nil, nil, err
	}

	// 3) Optional predecessor map, one key per vertex
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, len(dist))
	links := e.Predecessors()
	for v := range dist {
		prev[v] = links[v]
	}

	return dist, prev, nil
}
