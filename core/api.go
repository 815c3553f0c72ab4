// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: alternative constructors and read-only configuration getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every getter takes muVert read lock; flags are immutable after construction.

package core

// NewMixedGraph creates a Graph that accepts per-edge directedness overrides
// (WithEdgeDirected). Options are applied left-to-right after mixed mode is enabled;
// the caller's slice is not mutated.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)).
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Weighted reports whether non-zero edge weights are permitted.
// This is a policy flag; it does not scan stored edges.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the default directedness applied to newly created edges.
//
// Notes:
//   - Mixed graphs may still contain edges of the other orientation;
//     use HasDirectedEdges or Stats for the stored picture.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// MixedEdges reports whether per-edge directedness overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMixed
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes,
// including a classification of edges by their Directed flag.
//
// Implementation:
//   - Stage 1: Under muVert read lock, copy flags and vertex count.
//   - Stage 2: Under muEdgeAdj read lock, count edges by orientation.
//
// Determinism:
//   - Deterministic for a fixed graph state; each phase is internally consistent.
//
// Complexity:
//   - Time O(V+E) worst case (O(E) edge scan), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		MixedMode:       g.allowMixed,
		VertexCount:     len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
