package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/bfs"
	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/graph"
)

// vertices resolves IDs to handles of g.
func vertices(t *testing.T, g *graph.Graph, ids ...string) []*graph.Vertex {
	t.Helper()
	out := make([]*graph.Vertex, 0, len(ids))
	for _, id := range ids {
		v, err := g.MustVertex(id)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

// TestDistances_Errors verifies that invalid inputs and options are rejected.
func TestDistances_Errors(t *testing.T) {
	_, err := bfs.Distances(nil, nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	_, err = bfs.Distances(g, nil)
	require.ErrorIs(t, err, bfs.ErrNoSources)

	other := graph.NewGraph()
	x, err := other.AddVertex("X")
	require.NoError(t, err)
	_, err = bfs.Distances(g, []*graph.Vertex{x})
	require.ErrorIs(t, err, bfs.ErrSourceNotFound)
}

// TestDistances_MultiSource checks nearest-source distances on a path.
func TestDistances_MultiSource(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(7))

	res, err := bfs.Distances(g, vertices(t, g, "0", "6"))
	require.NoError(t, err)

	want := []int{0, 1, 2, 3, 2, 1, 0}
	for i, d := range want {
		require.Equal(t, d, res.Depth[strconv.Itoa(i)], "vertex %d", i)
	}
	require.Equal(t, 3, res.MaxDepth)
	require.Equal(t, []string{"0", "6", "1", "5", "2", "4", "3"}, res.Order)
}

// TestDistances_Unreachable reports NaN outside the sources' component.
func TestDistances_Unreachable(t *testing.T) {
	g := builder.MustBuild(nil, builder.Disjoint(builder.Path(2), builder.Path(2)))

	res, err := bfs.Distances(g, vertices(t, g, "g0:0"))
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Distance("g0:1"))
	require.True(t, math.IsNaN(res.Distance("g1:0")))
	require.Equal(t, 1, res.MaxDepth)
	require.Len(t, res.Order, 2)
}

// TestDistances_ClearsFlags ensures the visited marks do not leak.
func TestDistances_ClearsFlags(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(5))
	g.At(3).SetFlag(true)

	res, err := bfs.Distances(g, vertices(t, g, "0", "0"))
	require.NoError(t, err)
	require.Len(t, res.Order, 5)
	require.Equal(t, 2, res.Depth["3"])
	for _, v := range g.Vertices() {
		require.False(t, v.Flag(), v.ID())
	}
}

// TestDistances_Grid checks Manhattan distances from a corner.
func TestDistances_Grid(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(3, 4))

	res, err := bfs.Distances(g, vertices(t, g, builder.GridID(0, 0)))
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, r+c, res.Depth[builder.GridID(r, c)])
		}
	}
	require.Equal(t, 5, res.MaxDepth)
}

// TestDistances_OnVisit asserts hook order and abort semantics.
func TestDistances_OnVisit(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))

	var vis []string
	_, err := bfs.Distances(g, vertices(t, g, "0"),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, fmt.Sprintf("%s@%d", id, d)); return nil }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"0@0", "1@1", "2@2"}, vis)

	stop := errors.New("stop")
	_, err = bfs.Distances(g, vertices(t, g, "0"),
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "1" {
				return stop
			}
			return nil
		}))
	require.ErrorIs(t, err, stop)
}

// TestDistances_Cancellation verifies that a cancelled context halts the search.
func TestDistances_Cancellation(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Distances(g, vertices(t, g, "0"), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
