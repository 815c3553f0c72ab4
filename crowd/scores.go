// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// scores.go - S, D, π and the h-measure.
//
//	S(v) = max{ m·k : v is an (m,k)-observer }, m ∈ [MinM, maxM], k ∈ [MinK, MaxK]
//	D(v) = |⋃ topics(u)| over informants u of v
//	π(v) = S(v)·D(v)
//	h(v) = max{ h ∈ [2, maxH] : v is an (h,h)-observer }, 0 if none

package crowd

import "fmt"

// Score bundles every metric of one vertex.
type Score struct {
	Vertex string `json:"vertex" yaml:"vertex"`
	S      int    `json:"s" yaml:"s"`
	D      int    `json:"d" yaml:"d"`
	Pi     int    `json:"pi" yaml:"pi"`
	H      int    `json:"h" yaml:"h"`
}

// S returns the structural position of v. Results are cached until
// ClearPathCache; a cached value is returned without consulting the guard.
//
// Candidates are tried in descending (m·k, m, k) order and the first observer
// hit wins, so the search stops early for well-placed vertices.
func (e *Engine) S(v string) (int, error) {
	if err := e.requireVertex(v); err != nil {
		return 0, err
	}
	if s, ok := e.scores[v]; ok {
		return s, nil
	}
	for _, c := range e.candidates {
		ok, err := e.IsObserver(v, c.m, c.k)
		if err != nil {
			return 0, err
		}
		if ok {
			e.scores[v] = c.mk
			return c.mk, nil
		}
	}
	e.scores[v] = 0

	return 0, nil
}

// D returns the number of distinct topics among v's informants, read from
// vertex metadata under NodeKey. Informants without the key contribute nothing.
func (e *Engine) D(v string) (int, error) {
	if err := e.requireVertex(v); err != nil {
		return 0, err
	}
	informants, err := e.informants(v)
	if err != nil {
		return 0, err
	}

	topics := make(map[string]struct{})
	for _, u := range informants {
		raw, _, err := e.graph.VertexMetadata(u, e.nodeKey)
		if err != nil {
			return 0, fmt.Errorf("crowd: topic of %q: %w", u, err)
		}
		for _, label := range TopicOf(raw).members {
			topics[label] = struct{}{}
		}
	}

	return len(topics), nil
}

// Pi returns D(v)·S(v).
func (e *Engine) Pi(v string) (int, error) {
	d, err := e.D(v)
	if err != nil {
		return 0, err
	}
	s, err := e.S(v)
	if err != nil {
		return 0, err
	}

	return d * s, nil
}

// HMeasure is HMeasureUpTo(v, DefaultMaxH).
func (e *Engine) HMeasure(v string) (int, error) {
	return e.HMeasureUpTo(v, DefaultMaxH)
}

// HMeasureUpTo returns the largest h in [2, maxH] for which v is an
// (h,h)-observer, or 0. maxH < 2 yields 0.
func (e *Engine) HMeasureUpTo(v string, maxH int) (int, error) {
	if err := e.requireVertex(v); err != nil {
		return 0, err
	}
	for h := maxH; h >= MinK; h-- {
		ok, err := e.IsObserver(v, h, h)
		if err != nil {
			return 0, err
		}
		if ok {
			return h, nil
		}
	}

	return 0, nil
}

// Scores evaluates S, D, π and h (with DefaultMaxH) for v.
func (e *Engine) Scores(v string) (Score, error) {
	return e.ScoresUpTo(v, DefaultMaxH)
}

// ScoresUpTo is Scores with an explicit h-measure bound.
func (e *Engine) ScoresUpTo(v string, maxH int) (Score, error) {
	sc := Score{Vertex: v}
	var err error
	if sc.S, err = e.S(v); err != nil {
		return Score{}, err
	}
	if sc.D, err = e.D(v); err != nil {
		return Score{}, err
	}
	sc.Pi = sc.S * sc.D
	if sc.H, err = e.HMeasureUpTo(v, maxH); err != nil {
		return Score{}, err
	}

	return sc, nil
}

// ScoreAll evaluates Scores for every vertex, in sorted vertex order.
func (e *Engine) ScoreAll() ([]Score, error) {
	ids := e.graph.Vertices()
	out := make([]Score, 0, len(ids))
	for _, id := range ids {
		sc, err := e.Scores(id)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}

	return out, nil
}
