// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID (numeric suffix order).
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex edgeID slices sorted by Edge.ID.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id under the graph's neighborhood policy.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges (mirrored adjacency is used); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges collected.
//
// Notes:
//   - Returned *Edge values are live catalog entries; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id over one edge,
// sorted lexicographically ascending.
//
// Adjacency policy:
//   - For each edge returned by Neighbors(id):
//   - If e.From == id, include e.To.
//   - Else if !e.Directed and e.To == id, include e.From.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity:
//   - Time O(d + k log k), Space O(k), where d is incident edges and k is unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// InNeighborIDs returns the unique IDs u such that an edge u→id exists, sorted lex asc.
//
// Policy:
//   - Directed edges contribute their tail when e.To == id.
//   - Undirected edges are mirrored, so for a purely undirected graph
//     InNeighborIDs(id) equals NeighborIDs(id).
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(V + k log k), Space O(k). The adjacency index is keyed by tail,
//     so every tail bucket is probed once for id.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	seen := make(map[string]struct{})
	for from, toMap := range g.adjacencyList {
		if len(toMap[id]) > 0 {
			seen[from] = struct{}{}
		}
	}

	return sortedKeys(seen), nil
}

// AdjacencyList returns a snapshot mapping each "from" vertex ID to the list of incident edge IDs.
// Each slice is sorted by Edge.ID for deterministic per-vertex enumeration and is
// freshly allocated, so callers may retain and mutate it.
//
// Determinism:
//   - Map key iteration order is not deterministic in Go; iterate over Vertices() for stable order.
//
// Complexity:
//   - Time O(V + E + Σ sort(deg(v))), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		sort.Slice(buf, func(i, j int) bool { return edgeIDLess(buf[i], buf[j]) })
		result[from] = buf
	}

	return result
}

// ensureAdjacency guarantees that adjacencyList[from] and adjacencyList[from][to] are initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets for the edge endpoints.
//
// Removal policy:
//   - Always remove from e.From -> e.To.
//   - If the edge is undirected and not a self-loop, also remove from e.To -> e.From.
//
// Must be called ONLY under muEdgeAdj write lock, paired with delete(g.edges, e.ID).
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested buckets after removals.
// Top-level entries of isolated vertices are dropped too; lookups treat a nil bucket as empty.
// Must be called ONLY under muEdgeAdj write lock.
//
// Complexity: O(V + B) where B is the number of (from,to) buckets.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}

// sortedKeys returns the keys of set in lexicographic ascending order.
func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}
