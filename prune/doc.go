// Package prune trims an information-flow graph down to its well-connected
// core before scoring: low-degree vertices and, optionally, light edges are
// cut round after round, keeping only the largest weakly connected component
// after every round that changed something.
//
//	core, err := prune.Iteratively(g,
//	    prune.WithThreshold(1),
//	    prune.WithWeightThreshold(2), prune.WithWeightKey("edgeweight"))
package prune
