// Package bfs provides breadth-first search over a core.Graph: unweighted
// shortest-path distances, parent links, visit order, early-stopping
// point-to-point paths and weak connected components.
//
// What
//
//   - BFS(g, start, opts...) returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath(g, source, target, opts...) stops as soon as target is
//     discovered and returns the vertex sequence source…target.
//   - ConnectedComponents / LargestComponent ignore direction and weights.
//
// Excluded vertices
//
//	WithExcluded(ids...) hides vertices from the search without copying or
//	mutating the graph. This is how "distance from s to t when x is removed"
//	queries are answered in O(V + E) per query.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so visit sequences and tie-broken paths are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithExcluded(ids...):    treat vertices as removed.
//   - WithIgnoreWeights():     allow weighted graphs, counting hops.
//   - WithOnVisit(fn):         hook during visit; returning error aborts.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound.
//   - ErrWeightedGraph        if run on a weighted graph without WithIgnoreWeights.
//   - ErrOptionViolation      for invalid options (negative MaxDepth, empty excluded ID).
//   - ErrNoPath               when ShortestPath cannot reach the target.
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
