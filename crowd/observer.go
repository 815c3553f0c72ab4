// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// observer.go - the (m,k)-observer classifier.
//
// v is an (m,k)-observer if at least k of its informants are pairwise
// separated: for every pair (a, b) the shortest path a→b and b→a that avoids
// v has at least m hops. Pairs are enumerated in a fixed order and cliques
// of mutually separated informants are grown incrementally, so the search
// stops at the first k-clique found.

package crowd

import (
	"fmt"
	"iter"
	"slices"
)

// IsObserver reports whether v is an (m,k)-observer.
//
// Errors:
//   - ErrInvalidArgument (wrapped) if m < 1 or k < 2; checked first.
//   - core.ErrVertexNotFound (wrapped) if v is absent.
//   - ErrStaleCache if the graph changed and ClearPathCache was not called.
//   - ErrCacheInvariant if an acknowledged refresh found populated caches.
//
// Complexity:
//   - O(d²) pair checks for d informants, each at most two BFS runs on a
//     cache miss, plus clique bookkeeping bounded by the cliques found.
func (e *Engine) IsObserver(v string, m, k int) (bool, error) {
	if m < MinM || k < MinK {
		return false, fmt.Errorf("%w: need m >= %d and k >= %d (got m=%d, k=%d)",
			ErrInvalidArgument, MinM, MinK, m, k)
	}
	if err := e.requireVertex(v); err != nil {
		return false, err
	}
	if err := e.guard(); err != nil {
		return false, err
	}

	informants, err := e.informants(v)
	if err != nil {
		return false, err
	}
	ok, err := e.classify(v, informants, m, k)
	if err != nil {
		return false, err
	}
	e.metrics.observeClassification(ok)

	return ok, nil
}

// clique is a sorted set of mutually separated informants.
type clique []string

func (c clique) equal(o clique) bool { return slices.Equal(c, o) }

// union merges two sorted cliques.
func (c clique) union(o clique) clique {
	out := make(clique, 0, len(c)+len(o))
	i, j := 0, 0
	for i < len(c) && j < len(o) {
		switch {
		case c[i] < o[j]:
			out = append(out, c[i])
			i++
		case c[i] > o[j]:
			out = append(out, o[j])
			j++
		default:
			out = append(out, c[i])
			i++
			j++
		}
	}
	out = append(out, c[i:]...)

	return append(out, o[j:]...)
}

func newPairClique(a, b string) clique {
	if b < a {
		a, b = b, a
	}
	return clique{a, b}
}

// classify runs the clique search over informants. Arguments are not
// re-validated here, so the single-informant (1,1) case stays reachable.
func (e *Engine) classify(v string, informants []string, m, k int) (bool, error) {
	if len(informants) < k {
		return false, nil
	}
	if len(informants) == 1 && m == 1 && k == 1 {
		return true, nil
	}

	cliques := make(map[string][]clique, len(informants))
	for a, b := range uniquePairs(informants) {
		ab, err := e.excludedPath(v, a, b)
		if err != nil {
			return false, err
		}
		if pathLength(ab) < Distance(m) {
			continue
		}
		ba, err := e.excludedPath(v, b, a)
		if err != nil {
			return false, err
		}
		if pathLength(ba) < Distance(m) {
			continue
		}

		if k <= 2 {
			return true, nil
		}

		pair := newPairClique(a, b)
		cliques[a] = append(cliques[a], pair)
		cliques[b] = append(cliques[b], pair)

		// Snapshots: registrations below must not feed this round.
		left := slices.Clone(cliques[a])
		right := slices.Clone(cliques[b])
		for _, ca := range left {
			for _, cb := range right {
				if len(ca) != len(cb) || ca.equal(pair) || cb.equal(pair) {
					continue
				}
				u := ca.union(cb)
				if len(u) != len(ca)+1 {
					continue
				}
				if len(u) >= k {
					return true, nil
				}
				for _, member := range u {
					cliques[member] = append(cliques[member], u)
				}
			}
		}
	}

	return false, nil
}

// uniquePairs yields (xs[i], xs[j]) for i = 1..n-1 and j = 0..i-1. The
// sequence is finite and can be ranged over any number of times.
func uniquePairs(xs []string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for i := 1; i < len(xs); i++ {
			for j := 0; j < i; j++ {
				if !yield(xs[i], xs[j]) {
					return
				}
			}
		}
	}
}
