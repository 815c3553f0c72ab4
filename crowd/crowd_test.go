package crowd_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/woc/builder"
	"github.com/katalvlaran/woc/core"
	"github.com/katalvlaran/woc/crowd"
)

// directed builds a directed unweighted graph from an edge list.
func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	return g
}

func newEngine(t *testing.T, g *core.Graph, opts ...crowd.Option) *crowd.Engine {
	t.Helper()
	e, err := crowd.New(g, opts...)
	require.NoError(t, err)

	return e
}

// abOnly: a→b.
func abOnly(t *testing.T) *core.Graph {
	return directed(t, [2]string{"a", "b"})
}

// chain4: a→b→c→d.
func chain4(t *testing.T) *core.Graph {
	return directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"})
}

// shortcut5: a→b→c→d⇄e with a shortcut a→e.
func shortcut5(t *testing.T) *core.Graph {
	return directed(t,
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"},
		[2]string{"d", "e"}, [2]string{"e", "d"}, [2]string{"a", "e"})
}

// shortcut5Topics labels shortcut5 with yes/no topics under key.
func shortcut5Topics(t *testing.T, key string) *core.Graph {
	g := shortcut5(t)
	for id, topic := range map[string]string{"a": "yes", "b": "no", "c": "yes", "d": "no", "e": "yes"} {
		require.NoError(t, g.SetVertexMetadata(id, key, topic))
	}

	return g
}

// florentine is the bidirectional marriage network with Pucci and
// alphabet-half topics under the default key.
func florentine(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.FlorentineFamilies(true),
		builder.AssignTopics(),
	)
	require.NoError(t, err)

	return g
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := crowd.New(nil)
	assert.ErrorIs(t, err, crowd.ErrNilGraph)
	assert.ErrorIs(t, err, crowd.ErrInvalidArgument)

	g := core.NewGraph()
	for _, opt := range []crowd.Option{crowd.WithMaxM(0), crowd.WithNodeKey(""), crowd.WithLogger(nil)} {
		_, err = crowd.New(g, opt)
		assert.ErrorIs(t, err, crowd.ErrOptionViolation)
		assert.ErrorIs(t, err, crowd.ErrInvalidArgument)
	}

	e := newEngine(t, g)
	assert.Equal(t, 2, e.MinK())
	assert.Equal(t, 5, e.MaxK())
	assert.Equal(t, 1, e.MinM())
	assert.Equal(t, 5, e.MaxM())
	assert.Equal(t, "T", e.NodeKey())
	assert.Same(t, g, e.Graph())
	assert.Equal(t, crowd.CacheStats{}, e.CacheStats())

	e = newEngine(t, g, crowd.WithMaxM(8), crowd.WithNodeKey("WWW"))
	assert.Equal(t, 8, e.MaxM())
	assert.Equal(t, "WWW", e.NodeKey())
}

func TestExcludedShortestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		graph                    func(*testing.T) *core.Graph
		excluded, source, target string
		want                     []string
		wantLen                  crowd.Distance
	}{
		{"chain exclude a, b to c", chain4, "a", "b", "c", []string{"b", "c"}, 1},
		{"chain exclude a, b to d", chain4, "a", "b", "d", []string{"b", "c", "d"}, 2},
		{"chain exclude b, a to d", chain4, "b", "a", "d", []string{}, crowd.Infinity},
		{"shortcut exclude b, a to e", shortcut5, "b", "a", "e", []string{"a", "e"}, 1},
		{"shortcut exclude b, a to d", shortcut5, "b", "a", "d", []string{"a", "e", "d"}, 2},
		{"excluded is source", abOnly, "a", "a", "b", []string{}, crowd.Infinity},
		{"excluded is target", abOnly, "a", "b", "a", []string{}, crowd.Infinity},
		{"all coincide", abOnly, "a", "a", "a", []string{}, crowd.Infinity},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := newEngine(t, tc.graph(t))
			got, err := e.ExcludedShortestPath(tc.excluded, tc.source, tc.target)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
			n, err := e.ExcludedShortestPathLength(tc.excluded, tc.source, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.wantLen, n)
		})
	}
}

func TestExcludedShortestPath_Missing(t *testing.T) {
	t.Parallel()

	e := newEngine(t, abOnly(t))
	for _, triple := range [][3]string{{"missing", "a", "b"}, {"a", "missing", "b"}, {"a", "b", "missing"}} {
		_, err := e.ExcludedShortestPath(triple[0], triple[1], triple[2])
		assert.ErrorIs(t, err, core.ErrVertexNotFound)
		_, err = e.ExcludedShortestPathLength(triple[0], triple[1], triple[2])
		assert.ErrorIs(t, err, core.ErrVertexNotFound)
	}
}

func TestExcludedShortestPath_ReturnsCopies(t *testing.T) {
	t.Parallel()

	e := newEngine(t, chain4(t))
	p, err := e.ExcludedShortestPath("a", "b", "d")
	require.NoError(t, err)
	p[1] = "tampered"

	p, err = e.ExcludedShortestPath("a", "b", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, p)
	assert.Equal(t, 1, e.CacheStats().UnconditionalPaths)
}

func TestExcludedShortestPath_CachesByExcludedVertex(t *testing.T) {
	t.Parallel()

	e := newEngine(t, chain4(t))
	_, err := e.ExcludedShortestPath("b", "a", "d")
	require.NoError(t, err)
	_, err = e.ExcludedShortestPath("c", "a", "d")
	require.NoError(t, err)

	st := e.CacheStats()
	assert.Equal(t, 1, st.UnconditionalPaths)
	assert.Equal(t, 2, st.ExcludedVertices)
	assert.Equal(t, 2, st.ExcludedPaths)
}

func TestExcludedShortestPath_WeightedCountsHops(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		_, err := g.AddEdge(e[0], e[1], 10)
		require.NoError(t, err)
	}
	e := newEngine(t, g)
	n, err := e.ExcludedShortestPathLength("b", "a", "c")
	require.NoError(t, err)
	assert.Equal(t, crowd.Distance(1), n)
	assert.Equal(t, "inf", crowd.Infinity.String())
	assert.Equal(t, "1", n.String())
}

func TestIsObserver_InvalidArguments(t *testing.T) {
	t.Parallel()

	e := newEngine(t, abOnly(t))
	for _, mk := range [][2]int{{-1, -1}, {0, 0}, {1, 1}, {0, 2}} {
		_, err := e.IsObserver("a", mk[0], mk[1])
		assert.ErrorIs(t, err, crowd.ErrInvalidArgument, "m=%d k=%d", mk[0], mk[1])
	}
	// Argument validation precedes the vertex lookup.
	_, err := e.IsObserver("missing", 1, 1)
	assert.ErrorIs(t, err, crowd.ErrInvalidArgument)

	_, err = e.IsObserver("missing", 2, 2)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIsObserver_ShortcutGrid(t *testing.T) {
	t.Parallel()

	e := newEngine(t, shortcut5(t))
	for m := 1; m <= 5; m++ {
		for k := 1; k <= 5; k++ {
			ok, err := e.IsObserver("d", m, k)
			if k == 1 {
				assert.ErrorIs(t, err, crowd.ErrInvalidArgument)
				continue
			}
			require.NoError(t, err)
			// d hears from c and e, which cannot reach each other without d.
			assert.Equal(t, k == 2, ok, "m=%d k=%d", m, k)
		}
	}
}

func TestIsObserver_Undirected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	e := newEngine(t, g)
	for m := 1; m <= 5; m++ {
		for k := 2; k <= 5; k++ {
			ok, err := e.IsObserver("c", m, k)
			require.NoError(t, err)
			assert.Equal(t, k == 2, ok, "m=%d k=%d", m, k)
		}
	}
}

func TestIsObserver_Florentine(t *testing.T) {
	t.Parallel()

	e := newEngine(t, florentine(t))
	//  m\k  2  3  4  5
	//  1    Y  Y  Y  Y
	//  2    Y  Y  Y  Y
	//  3    Y  Y  Y  Y
	//  4    Y  Y  Y  N
	//  5    Y  Y  Y  N
	for m := 1; m <= 5; m++ {
		for k := 2; k <= 5; k++ {
			ok, err := e.IsObserver(builder.FamilyMedici, m, k)
			require.NoError(t, err)
			assert.Equal(t, k < 5 || m <= 3, ok, "m=%d k=%d", m, k)
		}
	}
}

func TestIsObserver_TooFewInformants(t *testing.T) {
	t.Parallel()

	e := newEngine(t, abOnly(t))
	ok, err := e.IsObserver("a", 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = e.IsObserver("b", 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t, abOnly(t)).S("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	e := newEngine(t, shortcut5(t))
	s, err := e.S("d")
	require.NoError(t, err)
	assert.Equal(t, 5*2, s)
	assert.Equal(t, 1, e.CacheStats().Scores)

	s, err = newEngine(t, florentine(t)).S(builder.FamilyMedici)
	require.NoError(t, err)
	assert.Equal(t, 5*4, s)

	s, err = newEngine(t, shortcut5(t), crowd.WithMaxM(2)).S("d")
	require.NoError(t, err)
	assert.Equal(t, 2*2, s)

	s, err = newEngine(t, abOnly(t)).S("b")
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestD(t *testing.T) {
	t.Parallel()

	e := newEngine(t, abOnly(t))
	_, err := e.D("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	d, err := e.D("a")
	require.NoError(t, err)
	assert.Zero(t, d)

	for _, key := range []string{"T", "sentiment"} {
		e = newEngine(t, shortcut5Topics(t, key), crowd.WithNodeKey(key))
		for v, want := range map[string]int{"e": 2, "a": 0, "b": 1} {
			d, err = e.D(v)
			require.NoError(t, err)
			assert.Equal(t, want, d, "key=%s v=%s", key, v)
		}
	}

	e = newEngine(t, florentine(t))
	for v, want := range map[string]int{
		builder.FamilyMedici:       2,
		builder.FamilyPucci:        0,
		builder.FamilyLamberteschi: 1,
		builder.FamilyPazzi:        1,
	} {
		d, err = e.D(v)
		require.NoError(t, err)
		assert.Equal(t, want, d, v)
	}
}

func TestD_SetTopics(t *testing.T) {
	t.Parallel()

	g := directed(t, [2]string{"a", "x"}, [2]string{"b", "x"}, [2]string{"c", "x"})
	require.NoError(t, g.SetVertexMetadata("a", "T", []string{"econ", "law"}))
	require.NoError(t, g.SetVertexMetadata("b", "T", crowd.Topics{"law": {}, "art": {}}))
	require.NoError(t, g.SetVertexMetadata("c", "T", "econ"))

	d, err := newEngine(t, g).D("x")
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestPi(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t, abOnly(t)).Pi("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	pi, err := newEngine(t, shortcut5Topics(t, "T")).Pi("e")
	require.NoError(t, err)
	assert.Equal(t, 6*2, pi)

	pi, err = newEngine(t, florentine(t)).Pi(builder.FamilyMedici)
	require.NoError(t, err)
	assert.Equal(t, 20*2, pi)
}

func TestHMeasure(t *testing.T) {
	t.Parallel()

	_, err := newEngine(t, abOnly(t)).HMeasure("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	h, err := newEngine(t, shortcut5(t)).HMeasure("d")
	require.NoError(t, err)
	assert.Equal(t, 2, h)

	h, err = newEngine(t, shortcut5(t)).HMeasureUpTo("d", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, h)

	h, err = newEngine(t, shortcut5(t)).HMeasureUpTo("d", 1)
	require.NoError(t, err)
	assert.Zero(t, h)

	h, err = newEngine(t, florentine(t)).HMeasure(builder.FamilyMedici)
	require.NoError(t, err)
	assert.Equal(t, 4, h)
}

func TestScores(t *testing.T) {
	t.Parallel()

	e := newEngine(t, florentine(t))
	sc, err := e.Scores(builder.FamilyMedici)
	require.NoError(t, err)
	assert.Equal(t, crowd.Score{Vertex: builder.FamilyMedici, S: 20, D: 2, Pi: 40, H: 4}, sc)

	all, err := newEngine(t, shortcut5Topics(t, "T")).ScoreAll()
	require.NoError(t, err)
	require.Len(t, all, 5)
	ids := make([]string, 0, len(all))
	for _, s := range all {
		ids = append(ids, s.Vertex)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)
	assert.Equal(t, crowd.Score{Vertex: "e", S: 6, D: 2, Pi: 12, H: 2}, all[4])
}

func TestGuard_StaleAndClearCycle(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	g := abOnly(t)
	e := newEngine(t, g, crowd.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	for i, edge := range [][2]string{{"x", "y"}, {"xx", "yy"}} {
		_, err := g.AddEdge(edge[0], edge[1], 0)
		require.NoError(t, err)
		assert.True(t, e.Stale())
		assert.False(t, e.CacheStats().RefreshRequested)

		_, err = e.IsObserver("b", 2, 2)
		assert.ErrorIs(t, err, crowd.ErrStaleCache, "round %d", i)
		assert.Contains(t, logs.String(), "graph modified externally")

		e.ClearPathCache()
		assert.Equal(t, crowd.CacheStats{RefreshRequested: true}, e.CacheStats())

		_, err = e.IsObserver("b", 2, 2)
		require.NoError(t, err, "round %d", i)
		assert.False(t, e.CacheStats().RefreshRequested)
		assert.False(t, e.Stale())
	}
}

func TestGuard_EdgeRewireDetected(t *testing.T) {
	t.Parallel()

	g := chain4(t)
	e := newEngine(t, g)
	_, err := e.S("c")
	require.NoError(t, err)

	edges := g.Edges()
	require.NoError(t, g.RemoveEdge(edges[0].ID))
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)

	// Same endpoints, new edge ID.
	assert.True(t, e.Stale())
	_, err = e.IsObserver("c", 1, 2)
	assert.ErrorIs(t, err, crowd.ErrStaleCache)

	// A cached S is served without consulting the guard.
	s, err := e.S("c")
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestGuard_ClearWithoutChange(t *testing.T) {
	t.Parallel()

	e := newEngine(t, shortcut5(t))
	e.ClearPathCache()
	ok, err := e.IsObserver("d", 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	// Nothing changed, so the acknowledgement stays pending.
	assert.True(t, e.CacheStats().RefreshRequested)
}
