// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// snapshot.go - graph snapshot and the cache invalidation guard.
//
// The guard runs at every IsObserver entry:
//   - snapshot matches the graph: proceed.
//   - mismatch, no ClearPathCache since: warn and fail with ErrStaleCache.
//   - mismatch after ClearPathCache: re-snapshot, require empty caches,
//     consume the refresh request and proceed.

package crowd

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/woc/core"
)

// edgeIdentity is what the snapshot remembers of an edge.
type edgeIdentity struct {
	id, from, to string
	directed     bool
}

// snapshot is the vertex and edge identity set of a graph at one instant.
type snapshot struct {
	vertices map[string]struct{}
	edges    map[edgeIdentity]struct{}
}

func takeSnapshot(g *core.Graph) snapshot {
	ids := g.Vertices()
	edges := g.Edges()
	s := snapshot{
		vertices: make(map[string]struct{}, len(ids)),
		edges:    make(map[edgeIdentity]struct{}, len(edges)),
	}
	for _, id := range ids {
		s.vertices[id] = struct{}{}
	}
	for _, e := range edges {
		s.edges[identityOf(e)] = struct{}{}
	}

	return s
}

func identityOf(e *core.Edge) edgeIdentity {
	return edgeIdentity{id: e.ID, from: e.From, to: e.To, directed: e.Directed}
}

// matches reports whether g still has exactly the snapshotted vertices and edges.
func (s snapshot) matches(g *core.Graph) bool {
	ids := g.Vertices()
	if len(ids) != len(s.vertices) {
		return false
	}
	for _, id := range ids {
		if _, ok := s.vertices[id]; !ok {
			return false
		}
	}
	edges := g.Edges()
	if len(edges) != len(s.edges) {
		return false
	}
	for _, e := range edges {
		if _, ok := s.edges[identityOf(e)]; !ok {
			return false
		}
	}

	return true
}

// CacheStats describes the Engine's memoized state.
type CacheStats struct {
	// UnconditionalPaths is the number of cached (source,target) paths.
	UnconditionalPaths int
	// ExcludedVertices is the number of excluded vertices with a path table.
	ExcludedVertices int
	// ExcludedPaths is the total number of cached paths across those tables.
	ExcludedPaths int
	// Scores is the number of cached S values.
	Scores int
	// RefreshRequested is true between ClearPathCache and the next refresh.
	RefreshRequested bool
}

// CacheStats returns the current cache sizes and refresh flag.
func (e *Engine) CacheStats() CacheStats {
	st := CacheStats{
		UnconditionalPaths: len(e.unconditional),
		ExcludedVertices:   len(e.excluded),
		Scores:             len(e.scores),
		RefreshRequested:   e.refreshRequested,
	}
	for _, byPair := range e.excluded {
		st.ExcludedPaths += len(byPair)
	}

	return st
}

// Stale reports whether the graph differs from the last snapshot.
// It has no side effects.
func (e *Engine) Stale() bool { return !e.snap.matches(e.graph) }

// ClearPathCache drops every memoized path and S value and acknowledges
// that the graph may have changed. Call it after mutating the graph.
func (e *Engine) ClearPathCache() {
	e.unconditional = make(map[pathKey][]string)
	e.excluded = make(map[string]map[pathKey][]string)
	e.scores = make(map[string]int)
	e.refreshRequested = true
	e.logger.Debug("crowd: path cache cleared")
}

// guard enforces the snapshot discipline described in the file header.
func (e *Engine) guard() error {
	if e.snap.matches(e.graph) {
		return nil
	}
	if !e.refreshRequested {
		e.metrics.observeStale()
		e.logger.Warn("crowd: graph modified externally; cached paths miss until ClearPathCache is called",
			slog.Int("vertices", e.graph.VertexCount()),
			slog.Int("edges", e.graph.EdgeCount()))
		return ErrStaleCache
	}

	e.snap = takeSnapshot(e.graph)
	st := e.CacheStats()
	if st.UnconditionalPaths != 0 || st.ExcludedVertices != 0 || st.Scores != 0 {
		return fmt.Errorf("%w: refresh with %d unconditional, %d excluded tables, %d scores cached",
			ErrCacheInvariant, st.UnconditionalPaths, st.ExcludedVertices, st.Scores)
	}
	e.refreshRequested = false
	e.metrics.observeRefresh()
	e.logger.Debug("crowd: snapshot refreshed",
		slog.Int("vertices", len(e.snap.vertices)),
		slog.Int("edges", len(e.snap.edges)))

	return nil
}
