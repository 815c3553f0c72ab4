package crowd_test

import (
	"fmt"

	"github.com/katalvlaran/woc/builder"
	"github.com/katalvlaran/woc/core"
	"github.com/katalvlaran/woc/crowd"
)

// ExampleEngine scores the Medici in the Florentine marriage network.
func ExampleEngine() {
	g, _ := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		nil,
		builder.FlorentineFamilies(true),
		builder.AssignTopics(),
	)
	e, _ := crowd.New(g)
	sc, _ := e.Scores(builder.FamilyMedici)
	fmt.Printf("S=%d D=%d pi=%d h=%d\n", sc.S, sc.D, sc.Pi, sc.H)
	// Output: S=20 D=2 pi=40 h=4
}

// ExampleEngine_ClearPathCache shows the refresh cycle after a graph change.
func ExampleEngine_ClearPathCache() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", 0)
	e, _ := crowd.New(g)

	_, _ = g.AddEdge("c", "b", 0)
	_, err := e.IsObserver("b", 1, 2)
	fmt.Println(err == crowd.ErrStaleCache)

	e.ClearPathCache()
	ok, err := e.IsObserver("b", 1, 2)
	fmt.Println(ok, err)
	// Output:
	// true
	// true <nil>
}
