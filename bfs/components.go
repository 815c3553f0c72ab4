package bfs

import (
	"sort"

	"github.com/katalvlaran/woc/core"
)

// ConnectedComponents partitions g's vertices into weakly connected components:
// edge direction and weights are ignored, so u and v share a component when
// any chain of edges joins them.
//
// Ordering: every component is sorted lexicographically, and components are
// ordered by their smallest member. Isolated vertices form singleton components.
//
// Time:   O(V + E) plus sorting.
// Memory: O(V) for the seen set and the output.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	vertices := g.Vertices()
	seen := make(map[string]bool, len(vertices))
	var comps [][]string

	for _, root := range vertices {
		if seen[root] {
			continue
		}
		queue := []string{root}
		seen[root] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			out, err := g.NeighborIDs(u)
			if err != nil {
				return nil, err
			}
			in, err := g.InNeighborIDs(u)
			if err != nil {
				return nil, err
			}
			for _, nbrs := range [2][]string{out, in} {
				for _, v := range nbrs {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		sort.Strings(queue)
		comps = append(comps, queue)
	}

	return comps, nil
}

// LargestComponent returns the component with the most vertices.
// Ties go to the component whose smallest member sorts first; an empty graph yields nil.
func LargestComponent(g *core.Graph) ([]string, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	var best []string
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best, nil
}
