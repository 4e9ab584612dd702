// Package builder produces deterministic weighted fixture graphs on top of
// core.Graph: paths, cycles, stars, complete graphs, grids and seeded random
// sparse graphs. They feed the stepping engine's tests and the lvstep
// command's -generate flag.
//
// The package offers:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...) creates the graph and applies constructors in order.
//     – Constructor: a closure receiving the graph and the resolved builderConfig.
//     – ParseFixture: "path:5", "grid:3x4", "random:20:0.15" → Constructor.
//   - Vertex‐ID schemes (IDFn):
//     – DefaultIDFn ("0","1",…), SymbolIDFn ("A","B",…),
//       ExcelColumnIDFn ("A",…,"Z","AA",…), PaddedIDFn ("v000","v001",…).
//   - Edge‐weight distributions (WeightFn):
//     – DefaultWeightFn, ConstantWeightFn, UniformWeightFn,
//       IntUniformWeightFn, ExponentialWeightFn. All are non-negative.
//
// Guarantees:
//
//   - Same graph options, builder options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless input; graph constructors never panic
//     and return sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...).
package builder
