// Package woc scores how exposed each vertex of a social graph is to a
// coordinated "wisdom of crowds" manipulation.
//
// A vertex v is an (m,k)-observer when at least k of its informants are
// pairwise separated: every shortest route between two of them that avoids v
// is at least m hops long, in both directions. The
// crowd package turns that predicate into four per-vertex scores:
//
//	S  - largest m·k for which v is an (m,k)-observer
//	D  - number of distinct topics carried by v's informants
//	π  - S·D, the vulnerability index
//	h  - largest h for which v is an (h,h)-observer
//
// Layout:
//
//	core/    - thread-safe Graph, Vertex and Edge primitives with metadata
//	bfs/     - breadth-first traversal, shortest paths, connected components
//	builder/ - deterministic fixtures (Path, Star, Cycle, RandomSparse, Florentine families)
//	crowd/   - path resolver, observer classifier, S/D/π/h engine, cache guard
//	prune/   - iterative low-degree and light-edge pruning
//	report/  - π-curve and bar series, XLSX export
//	config/  - koanf-backed configuration with validation
//	cmd/woc  - the command-line front end
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.FlorentineFamilies(false), builder.AssignTopics())
//	eng, _ := crowd.New(g)
//	sc, _ := eng.Scores(builder.FamilyMedici)
//	fmt.Println(sc.S, sc.D, sc.Pi, sc.H)
//
//	go install github.com/katalvlaran/woc/cmd/woc@latest
package woc
