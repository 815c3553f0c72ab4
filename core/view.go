// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex/edge IDs, directedness and metadata.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated and the result
// keeps g's configuration flags.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = copyVertex(v)
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// The counter is carried so that later AddEdge calls on out never reuse a source ID.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		linkEdge(out, copyEdge(e))
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
