// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// paths.go - exclusion-aware shortest paths with two-level memoization.
//
// Resolution of (excluded, source, target):
//  1. Degenerate triples (source == target, excluded == source or
//     excluded == target) resolve to the empty path.
//  2. The unconditional path source→target is looked up or computed once.
//  3. If excluded is not on it, that path is the answer.
//  4. Otherwise the path in G − {excluded} is looked up or computed and
//     memoized under excluded.
//
// Paths count hops; edge weights are ignored. An empty path means "no path".

package crowd

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/woc/bfs"
)

// Distance is a hop count between two vertices, or Infinity when unreachable.
type Distance int

// Infinity is the Distance of an unreachable target.
const Infinity Distance = math.MaxInt

// IsInfinite reports whether d denotes "no path".
func (d Distance) IsInfinite() bool { return d == Infinity }

// String renders d, using "inf" for Infinity.
func (d Distance) String() string {
	if d.IsInfinite() {
		return "inf"
	}
	return fmt.Sprintf("%d", int(d))
}

// Cache labels used by Metrics.
const (
	cacheUnconditional = "unconditional"
	cacheExcluded      = "excluded"
)

// ExcludedShortestPath returns a fewest-hop path source→…→target that avoids
// excluded, or an empty slice if none exists. The returned slice is a copy.
//
// Errors:
//   - core.ErrVertexNotFound (wrapped) if excluded, source or target is absent,
//     checked in that order.
func (e *Engine) ExcludedShortestPath(excluded, source, target string) ([]string, error) {
	for _, id := range [...]string{excluded, source, target} {
		if err := e.requireVertex(id); err != nil {
			return nil, err
		}
	}
	p, err := e.excludedPath(excluded, source, target)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(p))
	copy(out, p)

	return out, nil
}

// ExcludedShortestPathLength returns the hop count of ExcludedShortestPath,
// or Infinity when the path is empty.
func (e *Engine) ExcludedShortestPathLength(excluded, source, target string) (Distance, error) {
	p, err := e.ExcludedShortestPath(excluded, source, target)
	if err != nil {
		return 0, err
	}

	return pathLength(p), nil
}

func pathLength(p []string) Distance {
	if len(p) == 0 {
		return Infinity
	}
	return Distance(len(p) - 1)
}

// excludedPath resolves through both caches. Vertices must already exist.
// The returned slice is cache-owned.
func (e *Engine) excludedPath(excluded, source, target string) ([]string, error) {
	if source == target || excluded == source || excluded == target {
		return nil, nil
	}

	base, err := e.unconditionalPath(source, target)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(base, excluded) {
		return base, nil
	}

	key := pathKey{source: source, target: target}
	byPair, ok := e.excluded[excluded]
	if ok {
		if p, hit := byPair[key]; hit {
			e.metrics.observeLookup(cacheExcluded, true)
			return p, nil
		}
	} else {
		byPair = make(map[pathKey][]string)
		e.excluded[excluded] = byPair
	}
	e.metrics.observeLookup(cacheExcluded, false)

	p, err := e.search(source, target, bfs.WithExcluded(excluded))
	if err != nil {
		return nil, err
	}
	byPair[key] = p

	return p, nil
}

// unconditionalPath resolves source→target in the full graph, memoized.
func (e *Engine) unconditionalPath(source, target string) ([]string, error) {
	key := pathKey{source: source, target: target}
	if p, ok := e.unconditional[key]; ok {
		e.metrics.observeLookup(cacheUnconditional, true)
		return p, nil
	}
	e.metrics.observeLookup(cacheUnconditional, false)

	p, err := e.search(source, target)
	if err != nil {
		return nil, err
	}
	e.unconditional[key] = p

	return p, nil
}

// search runs a hop-count BFS; unreachability yields an empty path.
func (e *Engine) search(source, target string, opts ...bfs.Option) ([]string, error) {
	opts = append(opts, bfs.WithIgnoreWeights())
	p, err := bfs.ShortestPath(e.graph, source, target, opts...)
	if errors.Is(err, bfs.ErrNoPath) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("crowd: shortest path %q→%q: %w", source, target, err)
	}

	return p, nil
}
