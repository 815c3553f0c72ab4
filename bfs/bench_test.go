package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/woc/bfs"
	"github.com/katalvlaran/woc/core"
)

// randomSparse builds a directed sparse random graph with a fixed seed.
func randomSparse(v, e int) *core.Graph {
	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < v; i++ {
		_ = g.AddVertex(fmt.Sprintf("n%d", i))
	}
	for k := 0; k < e; k++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", rnd.Intn(v)), fmt.Sprintf("n%d", rnd.Intn(v)), 0)
	}

	return g
}

// BenchmarkShortestPath_Excluded measures the excluded-vertex query the crowd engine issues.
func BenchmarkShortestPath_Excluded(b *testing.B) {
	const V, E = 2000, 8000
	g := randomSparse(V, E)

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := fmt.Sprintf("n%d", i%V)
		dst := fmt.Sprintf("n%d", (i*7+1)%V)
		_, _ = bfs.ShortestPath(g, src, dst, bfs.WithExcluded("n0"))
	}
}

// BenchmarkConnectedComponents measures weak component labelling.
func BenchmarkConnectedComponents(b *testing.B) {
	const V, E = 5000, 6000
	g := randomSparse(V, E)

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ConnectedComponents(g)
	}
}
