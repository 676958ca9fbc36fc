// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvmatch/graph"
)

func TestFromUndirected(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(1)})
	src.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})
	src.AddNode(simple.Node(7))

	g, err := graph.FromUndirected(src)
	require.NoError(t, err)
	require.Equal(t, 4, g.Order())
	require.Equal(t, 2, g.Size())
	require.NoError(t, g.Validate())

	var ids []string
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID())
	}
	require.Equal(t, []string{"1", "2", "3", "7"}, ids)
	require.True(t, g.HasEdge("1", "3"))
	require.True(t, g.HasEdge("2", "1"))
	require.Equal(t, 0, g.At(3).Degree())

	// neighbors sorted by node ID
	one := g.At(0)
	require.Equal(t, "2", one.Neighbor(0).ID())
	require.Equal(t, "3", one.Neighbor(1).ID())
}

func TestFromUndirectedFunc(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	names := map[int64]string{0: "left", 1: "right"}
	g, err := graph.FromUndirectedFunc(src, func(n gonumgraph.Node) string { return names[n.ID()] })
	require.NoError(t, err)
	require.True(t, g.HasEdge("left", "right"))

	_, err = graph.FromUndirectedFunc(src, func(gonumgraph.Node) string { return "same" })
	require.ErrorIs(t, err, graph.ErrMultiEdgeNotAllowed)

	_, err = graph.FromUndirectedFunc(src, func(gonumgraph.Node) string { return "" })
	require.ErrorIs(t, err, graph.ErrEmptyVertexID)
}
