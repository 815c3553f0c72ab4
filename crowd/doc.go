// Package crowd computes the (m,k)-observer relation and the vulnerability
// scores S, D, π and h of Sullivan et al. (2020), "Vulnerability in Social
// Epistemic Networks", over a core.Graph.
//
// An Engine is one evaluation session. It resolves exclusion-aware shortest
// paths (the path from a to b that avoids a given vertex) through two memo
// tables, classifies observers by growing cliques of mutually separated
// informants, and caches S per vertex.
//
//	e, err := crowd.New(g, crowd.WithMaxM(5), crowd.WithNodeKey("T"))
//	ok, err := e.IsObserver("Medici", 3, 5)
//	sc, err := e.Scores("Medici") // {S:20 D:2 Pi:40 H:4}
//
// Informants of v are its predecessors on directed graphs and its neighbors
// on undirected graphs. Distances are hop counts; edge weights are ignored.
//
// Cache discipline: the Engine snapshots the graph's vertex and edge sets.
// If the graph changes, IsObserver fails with ErrStaleCache until the caller
// calls ClearPathCache, after which the next classification re-snapshots
// and proceeds.
//
// Concurrency: an Engine is not goroutine-safe. The graph is, so parallel
// callers should each own an Engine over the same unmodified graph.
package crowd
