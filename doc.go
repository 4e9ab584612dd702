// Package lvstep is a Dijkstra shortest-path engine you can drive one
// micro-step at a time.
//
// What is inside
//
//	core/     - thread-safe weighted graph (vertices, edges, oriented adjacency)
//	dijkstra/ - the stepping engine, a step-budget Runner, reports and paths,
//	            plus a one-shot Dijkstra call
//	observe/  - step observers: slog, OpenTelemetry, Prometheus, recorder
//	graphio/  - YAML and TOML graph documents
//	builder/  - deterministic fixture graphs (path, cycle, star, grid, ...)
//	bfs/      - hop-count traversal used for reachability summaries
//	cmd/lvstep - command-line driver
//
// Quick start
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	e, _ := dijkstra.New(g, "A")
//	for !e.Done() {
//		_ = e.Step()
//		v, _ := e.CurrentVertex()
//		fmt.Println(e.Steps(), e.Phase(), v)
//	}
//	fmt.Print(e.Result())
//
// Each Step executes exactly one of: select the next vertex, select its next
// pending edge, relax that edge. A run over V vertices and E outgoing arcs
// takes V + 2E steps.
package lvstep
