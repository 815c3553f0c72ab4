package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/woc/builder"
	"github.com/katalvlaran/woc/core"
)

// errUnknownDataset is returned for a --dataset name that is not built in.
var errUnknownDataset = errors.New("woc: unknown dataset")

// graphFile is the on-disk YAML graph format:
//
//	directed: true
//	weighted: false
//	nodes:
//	  - id: a
//	    topics: yes          # a label or a list of labels
//	edges:
//	  - from: a
//	    to: b
//	    weight: 0
//	    attrs: {edgeweight: 100}
type graphFile struct {
	Directed bool        `yaml:"directed"`
	Weighted bool        `yaml:"weighted,omitempty"`
	Nodes    []graphNode `yaml:"nodes"`
	Edges    []graphEdge `yaml:"edges"`
}

type graphNode struct {
	ID     string      `yaml:"id"`
	Topics interface{} `yaml:"topics,omitempty"`
}

type graphEdge struct {
	From   string                 `yaml:"from"`
	To     string                 `yaml:"to"`
	Weight float64                `yaml:"weight,omitempty"`
	Attrs  map[string]interface{} `yaml:"attrs,omitempty"`
}

// decodeGraph reads a graphFile and builds the graph, storing topics under topicKey.
func decodeGraph(r io.Reader, topicKey string) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var gf graphFile
	if err := dec.Decode(&gf); err != nil {
		return nil, fmt.Errorf("woc: decode graph: %w", err)
	}

	opts := []core.GraphOption{core.WithDirected(gf.Directed)}
	if gf.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, n := range gf.Nodes {
		if err := g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("woc: node %q: %w", n.ID, err)
		}
		if n.Topics != nil {
			if err := g.SetVertexMetadata(n.ID, topicKey, n.Topics); err != nil {
				return nil, fmt.Errorf("woc: node %q topics: %w", n.ID, err)
			}
		}
	}
	for i, e := range gf.Edges {
		var eopts []core.EdgeOption
		for k, v := range e.Attrs {
			eopts = append(eopts, core.WithEdgeMetadata(k, v))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("woc: edge #%d %s→%s: %w", i+1, e.From, e.To, err)
		}
	}

	return g, nil
}

// encodeGraph writes g in the graphFile format, reading topics from topicKey.
func encodeGraph(w io.Writer, g *core.Graph, topicKey string) error {
	gf := graphFile{Directed: g.Directed(), Weighted: g.Weighted()}
	for _, id := range g.Vertices() {
		topics, _, err := g.VertexMetadata(id, topicKey)
		if err != nil {
			return err
		}
		gf.Nodes = append(gf.Nodes, graphNode{ID: id, Topics: topics})
	}
	for _, e := range g.Edges() {
		gf.Edges = append(gf.Edges, graphEdge{From: e.From, To: e.To, Weight: e.Weight, Attrs: e.Metadata})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&gf); err != nil {
		return fmt.Errorf("woc: encode graph: %w", err)
	}

	return enc.Close()
}

func readGraphFile(path, topicKey string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("woc: open graph: %w", err)
	}
	defer f.Close()

	return decodeGraph(f, topicKey)
}

// Built-in datasets.
const (
	datasetFlorentine           = "florentine"
	datasetFlorentineUndirected = "florentine-undirected"
)

// buildDataset returns a built-in graph with alphabet-half topics under topicKey.
func buildDataset(name, topicKey string) (*core.Graph, error) {
	var gopts []core.GraphOption
	switch name {
	case datasetFlorentine:
		gopts = append(gopts, core.WithDirected(true))
	case datasetFlorentineUndirected:
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", errUnknownDataset, name,
			datasetFlorentine, datasetFlorentineUndirected)
	}

	return builder.BuildGraph(gopts,
		[]builder.BuilderOption{builder.WithTopicKey(topicKey)},
		builder.FlorentineFamilies(true),
		builder.AssignTopics(),
	)
}
