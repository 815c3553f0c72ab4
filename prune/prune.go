// SPDX-License-Identifier: MIT
// Package: woc/prune
//
// prune.go - iterative degree/weight pruning down to the largest component.
//
// Each round:
//  1. cut every vertex whose total degree (in+out on directed edges,
//     incidence on undirected ones) is <= threshold;
//  2. if a weight threshold is set, cut every edge whose weight is <= it;
//  3. if anything was cut, keep only the largest weakly connected component.
//
// Rounds repeat until one cuts nothing. The input graph is never modified.

package prune

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/woc/bfs"
	"github.com/katalvlaran/woc/core"
)

// Iteratively prunes a copy of g and returns it. The result keeps g's
// configuration flags, including directedness. A fully pruned graph is
// returned as an empty graph, not an error.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOptionViolation for an invalid option.
//   - ErrWeightAttributeMissing if weight thresholding meets an edge without
//     the weight attribute.
//
// Complexity:
//   - O(R·(V·E)) for R rounds; Degree scans the edge catalog per vertex.
func Iteratively(g *core.Graph, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("prune: start",
		slog.Int("threshold", o.threshold),
		slog.Bool("weighted", o.weightSet),
		slog.Float64("weight_threshold", o.weightThreshold),
		slog.String("weight_key", o.weightKey))

	out := g.Clone()
	for round := 1; ; round++ {
		o.logger.Debug("prune: round",
			slog.Int("round", round),
			slog.Int("vertices", out.VertexCount()),
			slog.Int("edges", out.EdgeCount()))

		cutVertices, err := lowDegree(out, o.threshold)
		if err != nil {
			return nil, err
		}
		out.RemoveVertices(cutVertices)

		cutEdges := 0
		if o.weightSet {
			if cutEdges, err = cutLightEdges(out, o); err != nil {
				return nil, err
			}
		}

		if len(cutVertices) == 0 && cutEdges == 0 {
			o.logger.Debug("prune: stable", slog.Int("rounds", round),
				slog.Int("vertices", out.VertexCount()), slog.Int("edges", out.EdgeCount()))
			return out, nil
		}

		largest, err := bfs.LargestComponent(out)
		if err != nil {
			return nil, fmt.Errorf("prune: components: %w", err)
		}
		if len(largest) == 0 {
			o.logger.Debug("prune: graph emptied", slog.Int("rounds", round))
			return out.CloneEmpty(), nil
		}
		keep := make(map[string]bool, len(largest))
		for _, id := range largest {
			keep[id] = true
		}
		out = core.InducedSubgraph(out, keep)
	}
}

// lowDegree lists vertices whose total degree is <= threshold.
func lowDegree(g *core.Graph, threshold int) ([]string, error) {
	var cut []string
	for _, id := range g.Vertices() {
		in, out, undirected, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("prune: degree of %q: %w", id, err)
		}
		if in+out+undirected <= threshold {
			cut = append(cut, id)
		}
	}

	return cut, nil
}

// cutLightEdges removes edges with weight <= o.weightThreshold and reports how many.
func cutLightEdges(g *core.Graph, o options) (int, error) {
	drop := make(map[string]struct{})
	for _, e := range g.Edges() {
		w, err := edgeWeight(g, e, o.weightKey)
		if err != nil {
			return 0, err
		}
		if w <= o.weightThreshold {
			drop[e.ID] = struct{}{}
		}
	}
	if len(drop) > 0 {
		g.FilterEdges(func(e *core.Edge) bool {
			_, cut := drop[e.ID]
			return !cut
		})
	}

	return len(drop), nil
}

// edgeWeight reads key from the edge metadata. The default key falls back to
// Edge.Weight on weighted graphs.
func edgeWeight(g *core.Graph, e *core.Edge, key string) (float64, error) {
	if raw, ok := e.Metadata[key]; ok {
		if w, ok := toFloat(raw); ok {
			return w, nil
		}
		return 0, fmt.Errorf("%w: edge %s (%s→%s): %q is %T, not a number",
			ErrWeightAttributeMissing, e.ID, e.From, e.To, key, raw)
	}
	if key == DefaultWeightKey && g.Weighted() {
		return e.Weight, nil
	}

	return 0, fmt.Errorf("%w: edge %s (%s→%s) has no %q",
		ErrWeightAttributeMissing, e.ID, e.From, e.To, key)
}

func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	default:
		return 0, false
	}
}
