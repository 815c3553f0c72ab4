// SPDX-License-Identifier: MIT
// Package: woc/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • rng       = nil                (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn    (constant 1, observed only by weighted graphs)
//   • topicKey  = "T"
//   • topicFn   = AlphabetHalfTopic  ("a-m" / "n-z" by first letter)

package builder

import (
	"math/rand"
)

// DefaultTopicKey is the vertex metadata key AssignTopics writes to.
const DefaultTopicKey = "T"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn WeightFn
	// Metadata key and labelling policy for AssignTopics.
	topicKey string
	topicFn  TopicFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins). An empty topic key falls back to DefaultTopicKey.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		topicKey: DefaultTopicKey,
		topicFn:  AlphabetHalfTopic,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.topicKey == "" {
		cfg.topicKey = DefaultTopicKey
	}

	return cfg
}

// edgeWeight returns the weight for the next emitted edge under g's weighting policy.
func (c builderConfig) edgeWeight(weighted bool) float64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
