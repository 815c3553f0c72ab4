// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/woc/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1) in ascending index order.
// Complexity: O(n).
func addVerticesWithIDFn(g *core.Graph, method string, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge emits u→v with the configured weight policy.
// When both is true and g is directed, the reverse v→u is emitted as well,
// so that symmetric relations (marriages, spokes) survive in directed mode.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string, both bool) error {
	weighted := g.Weighted()
	w := cfg.edgeWeight(weighted)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if both && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
