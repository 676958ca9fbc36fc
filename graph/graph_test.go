// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/graph"
)

// GraphSuite covers the vertex/edge lifecycle of graph.Graph.
type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	a, err := s.g.AddVertex("A")
	require.NoError(s.T(), err)
	again, err := s.g.AddVertex("A")
	require.NoError(s.T(), err)
	require.Same(s.T(), a, again)
	require.Equal(s.T(), 1, s.g.Order())
	require.Equal(s.T(), 0, a.Index())

	_, err = s.g.AddVertex("")
	require.ErrorIs(s.T(), err, graph.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeMirrors() {
	require.NoError(s.T(), s.g.AddEdge("A", "B"))
	require.NoError(s.T(), s.g.AddEdge("B", "C"))

	require.Equal(s.T(), 3, s.g.Order())
	require.Equal(s.T(), 2, s.g.Size())
	require.True(s.T(), s.g.HasEdge("A", "B"))
	require.True(s.T(), s.g.HasEdge("B", "A"))
	require.False(s.T(), s.g.HasEdge("A", "C"))

	b := s.g.At(1)
	require.Equal(s.T(), "B", b.ID())
	require.Equal(s.T(), 2, b.Degree())
	require.Equal(s.T(), "A", b.Neighbor(0).ID())
	require.Equal(s.T(), "C", b.Neighbor(1).ID())
	require.Equal(s.T(), 2, s.g.Neighbor(1, 1))
	require.NoError(s.T(), s.g.Validate())
}

func (s *GraphSuite) TestRejectsLoopsAndParallelEdges() {
	require.ErrorIs(s.T(), s.g.AddEdge("A", "A"), graph.ErrLoopNotAllowed)
	require.NoError(s.T(), s.g.AddEdge("A", "B"))
	require.ErrorIs(s.T(), s.g.AddEdge("B", "A"), graph.ErrMultiEdgeNotAllowed)
	require.ErrorIs(s.T(), s.g.AddEdge("", "A"), graph.ErrEmptyVertexID)
	require.Equal(s.T(), 1, s.g.Size())
}

func (s *GraphSuite) TestConnectForeignVertex() {
	other := graph.NewGraph()
	x, err := other.AddVertex("X")
	require.NoError(s.T(), err)
	a, err := s.g.AddVertex("A")
	require.NoError(s.T(), err)

	require.ErrorIs(s.T(), s.g.Connect(a, x), graph.ErrForeignVertex)
	require.False(s.T(), s.g.Owns(x))
}

func (s *GraphSuite) TestMustVertex() {
	_, err := s.g.MustVertex("missing")
	require.ErrorIs(s.T(), err, graph.ErrVertexNotFound)
}

func (s *GraphSuite) TestSortByIndex() {
	for _, id := range []string{"A", "B", "C", "D"} {
		_, err := s.g.AddVertex(id)
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), s.g.AddEdge("A", "D"))

	// reverse the numbering
	for i, v := range s.g.Vertices() {
		v.SetIndex(3 - i)
	}
	require.ErrorIs(s.T(), s.g.Validate(), graph.ErrIndexMismatch)
	// adjacency stays in position coordinates until the container is sorted
	require.Equal(s.T(), 3, s.g.Neighbor(0, 0))
	require.Equal(s.T(), 0, s.g.Neighbor(3, 0))

	s.g.SortByIndex()
	var ids []string
	for _, v := range s.g.Vertices() {
		ids = append(ids, v.ID())
	}
	require.Equal(s.T(), []string{"D", "C", "B", "A"}, ids)
	require.NoError(s.T(), s.g.Validate())
	require.Equal(s.T(), 3, s.g.Neighbor(0, 0))
}

func (s *GraphSuite) TestFlags() {
	require.NoError(s.T(), s.g.AddEdge("A", "B"))
	s.g.At(0).SetFlag(true)
	require.True(s.T(), s.g.At(0).Flag())
	s.g.ClearFlags()
	require.False(s.T(), s.g.At(0).Flag())
}

func (s *GraphSuite) TestResetIndices() {
	require.NoError(s.T(), s.g.AddEdge("A", "B"))
	s.g.At(0).SetIndex(7)
	s.g.ResetIndices()
	require.Equal(s.T(), 0, s.g.At(0).Index())
	require.Equal(s.T(), 1, s.g.At(1).Index())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
