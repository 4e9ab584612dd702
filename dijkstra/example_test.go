// Package dijkstra_test provides runnable examples for the stepping engine.
package dijkstra_test

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
)

// ExampleDijkstra computes all distances in one call.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%g, dist[B]=%g, dist[C]=%g\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleEngine_Step drives the engine one unit of work at a time and prints
// what each step did.
func ExampleEngine_Step() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	e, err := dijkstra.New(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !e.Done() {
		ph := e.Phase()
		if err = e.Step(); err != nil {
			fmt.Println("error:", err)
			return
		}
		v, _ := e.CurrentVertex()
		if edge, ok := e.CurrentEdge(); ok {
			fmt.Printf("%d %-15s %s→%s\n", e.Steps(), ph, edge.From, edge.To)
		} else {
			fmt.Printf("%d %-15s %s\n", e.Steps(), ph, v)
		}
	}
	// Output:
	// 1 select_vertex   A
	// 2 select_neighbor A→B
	// 3 relax           A→B
	// 4 select_neighbor A→C
	// 5 relax           A→C
	// 6 select_vertex   B
	// 7 select_neighbor B→C
	// 8 relax           B→C
	// 9 select_vertex   C
}

// ExampleResult_WriteTo prints the final report, including an unreachable vertex.
func ExampleResult_WriteTo() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2.5)
	_ = g.AddVertex("C")

	e, _ := dijkstra.New(g, "A")
	_ = dijkstra.NewRunner(e, dijkstra.RunnerCallbacks{}).RunToCompletion(context.Background())
	_, _ = e.Result().WriteTo(os.Stdout)
	// Output:
	// vertex = A, distance = 0
	// vertex = B, distance = 2.5
	// vertex = C, distance = Infinity
}

// ExampleResult_PathTo finds the fastest route across six intersections.
// The closed road C–D is simply left out of the graph.
func ExampleResult_PathTo() {
	g := core.NewGraph(core.WithWeighted())
	roads := []struct {
		u, v string
		min  float64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1}, {"B", "D", 5},
		{"C", "E", 10}, {"D", "F", 6}, {"E", "F", 3},
	}
	for _, r := range roads {
		_, _ = g.AddEdge(r.u, r.v, r.min)
	}

	e, err := dijkstra.New(g, "A", dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	dist, err := e.Run()
	if err != nil {
		fmt.Println(err)
		return
	}
	path, err := e.Result().PathTo("F")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Fastest route from A to F:")
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		fmt.Printf("  %s → %s : %s min\n", u, v, dijkstra.FormatDistance(dist[v]-dist[u]))
	}
	fmt.Printf("Total travel time: %s minutes\n", dijkstra.FormatDistance(dist["F"]))
	// Output:
	// Fastest route from A to F:
	//   A → C : 2 min
	//   C → B : 1 min
	//   B → D : 5 min
	//   D → F : 6 min
	// Total travel time: 14 minutes
}
