// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// engine.go - Engine construction, options and accessors.
//
// An Engine is a stateful evaluation session over one core.Graph. It holds
// the memoized path caches, the S cache and the graph snapshot the cache
// guard compares against. It is not safe for concurrent use; run one Engine
// per goroutine over a shared read-only graph instead.

package crowd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/woc/core"
)

// Parameter bounds fixed for every Engine.
const (
	// MinK is the smallest clique size considered by S.
	MinK = 2
	// MaxK is the largest clique size considered by S.
	MaxK = 5
	// MinM is the smallest separation considered by S.
	MinM = 1

	// DefaultMaxM is the largest separation considered by S unless WithMaxM is given.
	DefaultMaxM = 5
	// DefaultNodeKey is the vertex metadata key holding topics.
	DefaultNodeKey = "T"
	// DefaultMaxH is the upper bound HMeasure searches from.
	DefaultMaxH = 6
)

// Option configures an Engine. Invalid values are recorded and surfaced by
// New as ErrOptionViolation.
type Option func(*engineOptions)

type engineOptions struct {
	maxM    int
	nodeKey string
	logger  *slog.Logger
	metrics *Metrics
	err     error
}

// WithMaxM sets the largest m evaluated by S. m must be >= MinM.
func WithMaxM(m int) Option {
	return func(o *engineOptions) {
		if m < MinM {
			o.err = fmt.Errorf("%w: maxM must be >= %d (got %d)", ErrOptionViolation, MinM, m)
			return
		}
		o.maxM = m
	}
}

// WithNodeKey sets the vertex metadata key D reads topics from.
func WithNodeKey(key string) Option {
	return func(o *engineOptions) {
		if key == "" {
			o.err = fmt.Errorf("%w: node key is empty", ErrOptionViolation)
			return
		}
		o.nodeKey = key
	}
}

// WithLogger routes the stale-cache advisory and cache resets to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.logger = l
	}
}

// WithMetrics attaches Prometheus counters. A nil *Metrics disables them.
func WithMetrics(m *Metrics) Option {
	return func(o *engineOptions) { o.metrics = m }
}

// pathKey addresses one cached (source, target) resolution.
type pathKey struct {
	source, target string
}

// candidate is one (m, k) pair S tries, with its product.
type candidate struct {
	mk, m, k int
}

// Engine evaluates (m,k)-observer status and the derived scores S, D, π and h
// for vertices of a graph, memoizing every shortest-path resolution.
type Engine struct {
	graph   *core.Graph
	maxM    int
	nodeKey string
	logger  *slog.Logger
	metrics *Metrics

	// unconditional: (source,target) → path; an empty path means unreachable.
	unconditional map[pathKey][]string
	// excluded: excluded vertex → (source,target) → path in G − {excluded}.
	excluded map[string]map[pathKey][]string
	// scores memoizes S per vertex.
	scores map[string]int

	candidates       []candidate
	snap             snapshot
	refreshRequested bool
}

// New creates an Engine over g and snapshots its current vertex and edge sets.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOptionViolation for an invalid option.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := engineOptions{maxM: DefaultMaxM, nodeKey: DefaultNodeKey}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	e := &Engine{
		graph:         g,
		maxM:          o.maxM,
		nodeKey:       o.nodeKey,
		logger:        o.logger,
		metrics:       o.metrics,
		unconditional: make(map[pathKey][]string),
		excluded:      make(map[string]map[pathKey][]string),
		scores:        make(map[string]int),
		candidates:    buildCandidates(MinM, o.maxM, MinK, MaxK),
		snap:          takeSnapshot(g),
	}

	return e, nil
}

// buildCandidates lists every (m·k, m, k) in descending lexicographic order.
func buildCandidates(minM, maxM, minK, maxK int) []candidate {
	out := make([]candidate, 0, (maxM-minM+1)*(maxK-minK+1))
	for m := minM; m <= maxM; m++ {
		for k := minK; k <= maxK; k++ {
			out = append(out, candidate{mk: m * k, m: m, k: k})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.mk != b.mk {
			return a.mk > b.mk
		}
		if a.m != b.m {
			return a.m > b.m
		}
		return a.k > b.k
	})

	return out
}

// Graph returns the graph the Engine evaluates.
func (e *Engine) Graph() *core.Graph { return e.graph }

// MinK returns the smallest k considered by S.
func (e *Engine) MinK() int { return MinK }

// MaxK returns the largest k considered by S.
func (e *Engine) MaxK() int { return MaxK }

// MinM returns the smallest m considered by S.
func (e *Engine) MinM() int { return MinM }

// MaxM returns the largest m considered by S.
func (e *Engine) MaxM() int { return e.maxM }

// NodeKey returns the metadata key topics are read from.
func (e *Engine) NodeKey() string { return e.nodeKey }

// requireVertex returns a core.ErrVertexNotFound-kind error if id is absent.
func (e *Engine) requireVertex(id string) error {
	if id == "" {
		return core.ErrEmptyVertexID
	}
	if !e.graph.HasVertex(id) {
		return fmt.Errorf("crowd: vertex %q: %w", id, core.ErrVertexNotFound)
	}

	return nil
}

// informants returns the vertices v hears from: predecessors on a directed
// graph, neighbors otherwise. The result is sorted and unique.
func (e *Engine) informants(v string) ([]string, error) {
	var (
		ids []string
		err error
	)
	if e.graph.Directed() {
		ids, err = e.graph.InNeighborIDs(v)
	} else {
		ids, err = e.graph.NeighborIDs(v)
	}
	if err != nil {
		return nil, fmt.Errorf("crowd: informants of %q: %w", v, err)
	}

	return ids, nil
}
