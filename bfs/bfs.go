// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, neighbor filtering and vertex exclusion.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/woc/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph without WithIgnoreWeights.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
	done    bool // stopAt reached
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ErrNeighbors for graph failures, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if _, hidden := o.Excluded[startID]; hidden {
		return nil, fmt.Errorf("%w: %q is excluded", ErrStartVertexNotFound, startID)
	}

	w := newWalker(g, o)
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// ShortestPath returns one fewest-hop path source→…→target, both endpoints included.
// The search stops as soon as target is discovered.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation, ErrWeightedGraph as for BFS.
//   - ErrStartVertexNotFound / ErrTargetVertexNotFound for unknown endpoints.
//   - ErrNoPath when target is unreachable, including when either endpoint is excluded.
//
// Determinism:
//   - Neighbors are expanded in NeighborIDs order, so ties between equal-length
//     paths always resolve the same way.
//
// Complexity: O(V + E) worst case.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, error) {
	o, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(source) {
		return nil, ErrStartVertexNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetVertexNotFound
	}
	_, srcHidden := o.Excluded[source]
	_, dstHidden := o.Excluded[target]
	if srcHidden || dstHidden {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, source, target)
	}
	if source == target {
		return []string{source}, nil
	}

	o.stopAt = target
	w := newWalker(g, o)
	w.enqueue(source, 0, "")
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res.PathTo(target)
}

// buildOptions applies opts over the defaults and validates the graph against them.
func buildOptions(g *core.Graph, opts []Option) (BFSOptions, error) {
	if g == nil {
		return BFSOptions{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return BFSOptions{}, o.err
	}
	if g.Weighted() && !o.IgnoreWeights {
		return BFSOptions{}, ErrWeightedGraph
	}

	return o, nil
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.VertexCount()

	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	if w.opts.stopAt != "" && id == w.opts.stopAt {
		w.done = true
	}
}

// loop processes the queue until empty, error, cancellation or early stop.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves neighbors, applies exclusion, filtering and MaxDepth,
// and enqueues each unseen neighbor. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		if _, hidden := w.opts.Excluded[nbr]; hidden {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if w.done {
			return nil
		}
	}

	return nil
}
