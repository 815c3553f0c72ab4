// SPDX-License-Identifier: MIT
// Package: woc/crowd
//
// topics.go - the topic variant read from vertex metadata.

package crowd

import (
	"fmt"
	"sort"
)

// TopicKind tags a Topic.
type TopicKind uint8

const (
	// TopicNone means the vertex carries no topic.
	TopicNone TopicKind = iota
	// TopicScalar is a single topic label.
	TopicScalar
	// TopicSet is a set of topic labels.
	TopicSet
)

// Topics is a set of topic labels that can be stored as vertex metadata.
type Topics map[string]struct{}

// Topic is either a single label or a set of labels.
type Topic struct {
	kind    TopicKind
	members []string
}

// ScalarTopic returns a single-label Topic.
func ScalarTopic(label string) Topic {
	return Topic{kind: TopicScalar, members: []string{label}}
}

// SetTopic returns a set Topic over labels; duplicates collapse.
func SetTopic(labels ...string) Topic {
	return Topic{kind: TopicSet, members: normalize(labels)}
}

// TopicOf converts a metadata value into a Topic:
//
//	nil                                   → TopicNone
//	string                                → TopicScalar
//	[]string, []interface{}, Topics,
//	map[string]struct{}, map[string]bool  → TopicSet (bool maps keep true keys)
//	Topic                                 → itself
//	anything else                         → TopicScalar of its fmt rendering
//
// Elements of []interface{} are rendered with fmt unless they are strings.
func TopicOf(value interface{}) Topic {
	switch v := value.(type) {
	case nil:
		return Topic{}
	case Topic:
		return v
	case string:
		return ScalarTopic(v)
	case []string:
		return SetTopic(v...)
	case []interface{}:
		labels := make([]string, 0, len(v))
		for _, x := range v {
			labels = append(labels, render(x))
		}
		return SetTopic(labels...)
	case Topics:
		return SetTopic(keys(v)...)
	case map[string]struct{}:
		return SetTopic(keys(v)...)
	case map[string]bool:
		labels := make([]string, 0, len(v))
		for label, in := range v {
			if in {
				labels = append(labels, label)
			}
		}
		return SetTopic(labels...)
	default:
		return ScalarTopic(render(v))
	}
}

// Kind returns the variant tag.
func (t Topic) Kind() TopicKind { return t.kind }

// Members returns the labels, sorted and unique. The slice is a copy.
func (t Topic) Members() []string {
	out := make([]string, len(t.members))
	copy(out, t.members)
	return out
}

func render(x interface{}) string {
	if s, ok := x.(string); ok {
		return s
	}
	return fmt.Sprint(x)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func normalize(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.Strings(out)
	w := 0
	for i, s := range out {
		if i > 0 && s == out[w-1] {
			continue
		}
		out[w] = s
		w++
	}

	return out[:w]
}
