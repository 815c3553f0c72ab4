package core_test

import (
	"fmt"

	"github.com/katalvlaran/woc/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("C", "A", 0)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleGraph_InNeighborIDs shows predecessor lookup on a directed graph.
func ExampleGraph_InNeighborIDs() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("c", "d", 0)

	in, _ := g.InNeighborIDs("c")
	out, _ := g.NeighborIDs("c")
	fmt.Println(in, out)

	// Output:
	// [a b] [d]
}
