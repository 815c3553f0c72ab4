// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import (
	"sync/atomic"
)

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Vertex metadata maps are copied one level deep, so SetVertexMetadata on the clone
// does not leak into g.
//
// Complexity: O(V + Σ|metadata|).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = copyVertex(v)
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Edge IDs, directedness and metadata are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.edges {
		linkEdge(clone, copyEdge(e))
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// nextEdgeID restarts, so the next edge is "e1" again.
//
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// copyVertex duplicates v with a fresh first-level metadata map.
func copyVertex(v *Vertex) *Vertex {
	md := make(map[string]interface{}, len(v.Metadata))
	for k, val := range v.Metadata {
		md[k] = val
	}

	return &Vertex{ID: v.ID, Metadata: md}
}

// copyEdge duplicates e, including its metadata map.
func copyEdge(e *Edge) *Edge {
	ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
	if e.Metadata != nil {
		ne.Metadata = make(map[string]interface{}, len(e.Metadata))
		for k, val := range e.Metadata {
			ne.Metadata[k] = val
		}
	}

	return ne
}

// linkEdge stores e in out's catalog and adjacency, mirroring undirected non-loops.
// out must be owned exclusively by the caller.
func linkEdge(out *Graph, e *Edge) {
	out.edges[e.ID] = e
	ensureAdjacency(out, e.From, e.To)
	out.adjacencyList[e.From][e.To][e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		ensureAdjacency(out, e.To, e.From)
		out.adjacencyList[e.To][e.From][e.ID] = struct{}{}
	}
}
