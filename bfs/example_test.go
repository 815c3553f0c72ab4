package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/woc/bfs"
	"github.com/katalvlaran/woc/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleShortestPath_excluded finds the fewest-hop route that avoids one vertex.
// Route1: A–B–K (2 hops), Route2: A–E–F–K (3 hops). Excluding B forces Route2.
func ExampleShortestPath_excluded() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "K", 0)
	_, _ = g.AddEdge("A", "E", 0)
	_, _ = g.AddEdge("E", "F", 0)
	_, _ = g.AddEdge("F", "K", 0)

	direct, _ := bfs.ShortestPath(g, "A", "K")
	detour, _ := bfs.ShortestPath(g, "A", "K", bfs.WithExcluded("B"))
	fmt.Println(direct)
	fmt.Println(detour)
	// Output:
	// [A B K]
	// [A E F K]
}

// ExampleConnectedComponents labels the weak components of a directed graph.
func ExampleConnectedComponents() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("b", "a", 0)
	_, _ = g.AddEdge("d", "c", 0)
	_ = g.AddVertex("e")

	comps, _ := bfs.ConnectedComponents(g)
	fmt.Println(comps)
	// Output:
	// [[a b] [c d] [e]]
}
