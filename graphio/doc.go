// Package graphio reads graph documents (YAML or TOML) into core.Graph.
//
// A document lists optional vertices and a set of weighted edges:
//
//	directed: true      # default true
//	source: A           # optional default source for the engine
//	vertices: [A, B, C] # optional; edge endpoints are added implicitly
//	edges:
//	  - {from: A, to: B, weight: 1}
//
// TOML documents use [[edges]] tables with the same keys. Weights must be
// present and numeric; every offending edge is reported, aggregated with
// go-multierror, as a *dijkstra.MalformedEdgeError. Range checks (negative,
// NaN, ±Inf) are left to the engine.
package graphio
