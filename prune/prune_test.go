package prune_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/woc/builder"
	"github.com/katalvlaran/woc/core"
	"github.com/katalvlaran/woc/prune"
)

func florentine(t *testing.T, gopts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, builder.FlorentineFamilies(true))
	require.NoError(t, err)

	return g
}

var coreFamilies = []string{
	builder.FamilyAlbizzi, builder.FamilyBarbadori, builder.FamilyBischeri,
	builder.FamilyCastellani, builder.FamilyGuadagni, builder.FamilyMedici,
	builder.FamilyPeruzzi, builder.FamilyRidolfi, builder.FamilyStrozzi,
	builder.FamilyTornabuoni,
}

func TestIteratively_Errors(t *testing.T) {
	t.Parallel()

	_, err := prune.Iteratively(nil)
	assert.ErrorIs(t, err, prune.ErrNilGraph)

	g := florentine(t)
	for _, opt := range []prune.Option{prune.WithThreshold(-1), prune.WithWeightKey(""), prune.WithLogger(nil)} {
		_, err = prune.Iteratively(g, opt)
		assert.ErrorIs(t, err, prune.ErrOptionViolation)
	}

	_, err = prune.Iteratively(g, prune.WithWeightThreshold(2), prune.WithWeightKey("no-such-key"))
	assert.ErrorIs(t, err, prune.ErrWeightAttributeMissing)

	// The default key is not backed by Edge.Weight on unweighted graphs.
	_, err = prune.Iteratively(g, prune.WithWeightThreshold(2))
	assert.ErrorIs(t, err, prune.ErrWeightAttributeMissing)
}

func TestIteratively_UndirectedFlorentine(t *testing.T) {
	t.Parallel()

	g := florentine(t)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Pucci, Lamberteschi, Ginori, Acciaiuoli and Pazzi go first; Salviati next.
	got, err := prune.Iteratively(g, prune.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, coreFamilies, got.Vertices())
	assert.False(t, got.Directed())
	assert.Contains(t, logs.String(), "prune: stable")

	assert.Equal(t, 16, g.VertexCount(), "input untouched")
	assert.Equal(t, builder.FlorentineMarriageCount, g.EdgeCount())
}

func TestIteratively_ThresholdTwoEmpties(t *testing.T) {
	t.Parallel()

	got, err := prune.Iteratively(florentine(t), prune.WithThreshold(2))
	require.NoError(t, err)
	assert.Zero(t, got.VertexCount())
	assert.Zero(t, got.EdgeCount())
	assert.False(t, got.Directed())
}

func TestIteratively_DirectedKeepsAllButIsolated(t *testing.T) {
	t.Parallel()

	g := florentine(t, core.WithDirected(true))
	got, err := prune.Iteratively(g)
	require.NoError(t, err)
	assert.True(t, got.Directed())
	assert.Equal(t, 15, got.VertexCount())
	assert.False(t, got.HasVertex(builder.FamilyPucci))
	assert.True(t, got.HasVertex(builder.FamilyPazzi))
	assert.Equal(t, 2*builder.FlorentineMarriageCount, got.EdgeCount())
}

func TestIteratively_WeightThreshold(t *testing.T) {
	t.Parallel()

	triangle := map[[2]string]bool{
		{builder.FamilyMedici, builder.FamilyRidolfi}:     true,
		{builder.FamilyMedici, builder.FamilyTornabuoni}:  true,
		{builder.FamilyRidolfi, builder.FamilyTornabuoni}: true,
	}
	g := core.NewGraph()
	for _, e := range florentine(t).Edges() {
		w := 1
		if triangle[[2]string{e.From, e.To}] || triangle[[2]string{e.To, e.From}] {
			w = 100
		}
		_, err := g.AddEdge(e.From, e.To, 0, core.WithEdgeMetadata("edgeweight", w))
		require.NoError(t, err)
	}

	got, err := prune.Iteratively(g, prune.WithWeightThreshold(2), prune.WithWeightKey("edgeweight"))
	require.NoError(t, err)
	assert.Equal(t, []string{builder.FamilyMedici, builder.FamilyRidolfi, builder.FamilyTornabuoni}, got.Vertices())
	assert.Equal(t, 3, got.EdgeCount())
}

func TestIteratively_DefaultKeyUsesEdgeWeight(t *testing.T) {
	t.Parallel()

	// Square a-b-c-d-a with heavy diagonals a-c and b-d.
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"a", "b", 1}, {"b", "c", 1}, {"c", "d", 1}, {"d", "a", 1}, {"a", "c", 5}, {"b", "d", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	// Only the diagonals survive; the two components tie and the one
	// holding the smallest vertex is kept.
	got, err := prune.Iteratively(g, prune.WithThreshold(0), prune.WithWeightThreshold(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got.Vertices())
	assert.Equal(t, 1, got.EdgeCount())
	assert.True(t, got.Weighted())
}
