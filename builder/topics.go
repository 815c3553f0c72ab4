// SPDX-License-Identifier: MIT
// Package: woc/builder
//
// topics.go - vertex topic labelling.
//
// Contract:
//   - AssignTopics labels every vertex present in g at call time, in Vertices() order.
//   - The label is cfg.topicFn(id) stored under cfg.topicKey; a nil label leaves
//     the vertex untouched (no attribute).
//   - Compose it after topology constructors: BuildGraph(gopts, bopts, Path(4), AssignTopics()).

package builder

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/woc/core"
)

const methodAssignTopics = "AssignTopics"

// TopicFn maps a vertex ID to its topic label: a string, a []string for
// multi-topic vertices, or nil for "no topic".
type TopicFn func(id string) interface{}

// Topic labels used by AlphabetHalfTopic.
const (
	TopicFirstHalf  = "a-m"
	TopicSecondHalf = "n-z"
)

// AlphabetHalfTopic labels an ID by its first letter: "a-m" for a..m and "n-z"
// otherwise (case-insensitive). IDs not starting with a letter fall into "n-z".
func AlphabetHalfTopic(id string) interface{} {
	if id == "" {
		return nil
	}
	r := unicode.ToLower([]rune(id)[0])
	if r >= 'a' && r <= 'm' {
		return TopicFirstHalf
	}

	return TopicSecondHalf
}

// TopicsFromMap returns a TopicFn backed by a fixed table; unknown IDs get no topic.
// The table is copied.
func TopicsFromMap(table map[string]interface{}) TopicFn {
	cp := make(map[string]interface{}, len(table))
	for k, v := range table {
		cp[k] = v
	}

	return func(id string) interface{} { return cp[id] }
}

// AssignTopics returns a Constructor that writes cfg.topicFn(id) under cfg.topicKey
// for every vertex of g.
// Complexity: O(V log V).
func AssignTopics() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, id := range g.Vertices() {
			label := cfg.topicFn(id)
			if label == nil {
				continue
			}
			if err := g.SetVertexMetadata(id, cfg.topicKey, label); err != nil {
				return fmt.Errorf("%s: SetVertexMetadata(%s): %w", methodAssignTopics, id, err)
			}
		}

		return nil
	}
}
