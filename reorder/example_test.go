package reorder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/reorder"
)

// ExampleReorderByLevels numbers a path from its sink end to its source end.
func ExampleReorderByLevels() {
	g, _ := builder.BuildGraph(nil, builder.Path(4))
	sink, _ := g.MustVertex("3")
	source, _ := g.MustVertex("0")

	res, err := reorder.ReorderByLevels(g, []*graph.Vertex{sink}, []*graph.Vertex{source},
		reorder.WithSort(true))
	if err != nil {
		fmt.Println(err)
		return
	}
	ids := make([]string, 0, g.Order())
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID())
	}
	fmt.Println(strings.Join(ids, " "))
	fmt.Println(res.Levels, res.MaxDistance)
	// Output:
	// 3 2 1 0
	// 10 3
}
