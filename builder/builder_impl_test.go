// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, weights and topic labels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/woc/builder"
	"github.com/katalvlaran/woc/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to weight for all edges in g.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gopts       []core.GraphOption
		bopts       []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			gopts: []core.GraphOption{core.WithWeighted()},
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				w := edgeWeights(g)
				assert.Equal(t, builder.DefaultEdgeWeight, w[edgeKey{"4", "0"}])
			},
		},
		{
			name:  "Path(4) directed letters",
			gopts: []core.GraphOption{core.WithDirected(true)},
			bopts: []builder.BuilderOption{builder.WithLetterIDs()},
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("a", "b"))
				assert.False(t, g.HasEdge("b", "a"))
				assert.True(t, g.HasEdge("c", "d"))
			},
		},
		{
			name:  "Star(4) directed has both spokes",
			gopts: []core.GraphOption{core.WithDirected(true)},
			ctor:  builder.Star(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(builder.CenterVertexID, "1"))
				assert.True(t, g.HasEdge("3", builder.CenterVertexID))
			},
		},
		{
			name:  "Florentine undirected with Pucci",
			ctor:  builder.FlorentineFamilies(true),
			wantV: 16, wantE: builder.FlorentineMarriageCount,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				nb, err := g.NeighborIDs(builder.FamilyMedici)
				require.NoError(t, err)
				assert.Equal(t, []string{
					builder.FamilyAcciaiuoli, builder.FamilyAlbizzi, builder.FamilyBarbadori,
					builder.FamilyRidolfi, builder.FamilySalviati, builder.FamilyTornabuoni,
				}, nb)
				nb, err = g.NeighborIDs(builder.FamilyPucci)
				require.NoError(t, err)
				assert.Empty(t, nb)
			},
		},
		{
			name:  "Florentine directed",
			gopts: []core.GraphOption{core.WithDirected(true)},
			ctor:  builder.FlorentineFamilies(false),
			wantV: 15, wantE: 2 * builder.FlorentineMarriageCount,
		},
		{
			name:  "RandomSparse p=1 undirected is complete",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 10,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, tc.bopts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph(nil, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)

	// Core refuses the second Path over the same vertices (no multi-edges).
	_, err = builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(3))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithSymbNumb("n")},
			builder.RandomSparse(20, 0.2),
		)
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, edgeWeights(a), edgeWeights(b))
	assert.Equal(t, "n0", a.Vertices()[0])
}

func TestAssignTopics(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.FlorentineFamilies(true), builder.AssignTopics())
	require.NoError(t, err)

	v, ok, err := g.VertexMetadata(builder.FamilyMedici, builder.DefaultTopicKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, builder.TopicFirstHalf, v)

	v, _, err = g.VertexMetadata(builder.FamilyTornabuoni, builder.DefaultTopicKey)
	require.NoError(t, err)
	assert.Equal(t, builder.TopicSecondHalf, v)

	table := builder.TopicsFromMap(map[string]interface{}{"a": "yes", "c": []string{"x", "y"}})
	g, err = builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithLetterIDs(), builder.WithTopicKey("sentiment"), builder.WithTopicFn(table)},
		builder.Path(4),
		builder.AssignTopics(),
	)
	require.NoError(t, err)

	v, ok, err = g.VertexMetadata("c", "sentiment")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, v)

	_, ok, err = g.VertexMetadata("b", "sentiment")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAlphabetHalfTopic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, builder.TopicFirstHalf, builder.AlphabetHalfTopic("medici"))
	assert.Equal(t, builder.TopicFirstHalf, builder.AlphabetHalfTopic("Albizzi"))
	assert.Equal(t, builder.TopicSecondHalf, builder.AlphabetHalfTopic("Pazzi"))
	assert.Equal(t, builder.TopicSecondHalf, builder.AlphabetHalfTopic("9lives"))
	assert.Nil(t, builder.AlphabetHalfTopic(""))
}
