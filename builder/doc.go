// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks and the CLI's built-in datasets.
//
// Every topology is a Constructor closure; BuildGraph creates the graph from
// core options, resolves BuilderOptions into one immutable config and runs the
// constructors in order. Apply runs constructors against an existing graph.
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithTopicKey("T")},
//	    builder.FlorentineFamilies(true),
//	    builder.AssignTopics(),
//	)
//
// Constructors: Path, Star, Cycle, RandomSparse, FlorentineFamilies, AssignTopics.
// Options: WithIDScheme/WithLetterIDs/WithSymbNumb, WithSeed/WithRand,
// WithWeightFn/WithConstantWeight/WithUniformWeight, WithTopicKey, WithTopicFn.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped core errors.
package builder
