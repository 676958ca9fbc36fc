// SPDX-License-Identifier: MIT
// Package builder_test verifies topology, counts and determinism of the
// builder constructors.
package builder_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/graph"
)

// adjacency renders g as "id:n1,n2,..." lines for equality checks.
func adjacency(g *graph.Graph) []string {
	var out []string
	for _, v := range g.Vertices() {
		line := v.ID() + ":"
		for k, w := range v.Neighbors() {
			if k > 0 {
				line += ","
			}
			line += w.ID()
		}
		out = append(out, line)
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *graph.Graph)
	}{
		{
			name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0,
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for i := 0; i < 3; i++ {
					require.True(t, g.HasEdge(strconv.Itoa(i), strconv.Itoa(i+1)))
				}
				require.False(t, g.HasEdge("0", "3"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				require.True(t, g.HasEdge("4", "0"))
				for _, v := range g.Vertices() {
					require.Equal(t, 2, v.Degree())
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				require.True(t, g.HasEdge("L0", "R2"))
				require.False(t, g.HasEdge("L0", "L1"))
				require.False(t, g.HasEdge("R0", "R1"))
			},
		},
		{
			name: "Grid(3,3)", ctor: builder.Grid(3, 3), wantV: 9, wantE: 12,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				require.Equal(t, builder.GridID(0, 0), g.At(0).ID())
				require.Equal(t, builder.GridID(2, 2), g.At(8).ID())
				require.True(t, g.HasEdge("1,1", "1,2"))
				require.True(t, g.HasEdge("1,1", "2,1"))
				require.False(t, g.HasEdge("0,0", "1,1"))
				center, _ := g.Vertex("1,1")
				require.Equal(t, 4, center.Degree())
			},
		},
		{
			name: "Petersen", ctor: builder.Petersen(), wantV: 10, wantE: 15,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				for _, v := range g.Vertices() {
					require.Equal(t, 3, v.Degree(), "vertex %s", v.ID())
				}
				require.True(t, g.HasEdge("5", "7"))
				require.False(t, g.HasEdge("5", "6"))
			},
		},
		{
			name: "Disjoint(triangle,triangle)", ctor: builder.Disjoint(builder.Cycle(3), builder.Cycle(3)),
			wantV: 6, wantE: 6,
			sampleCheck: func(t *testing.T, g *graph.Graph) {
				require.True(t, g.HasEdge("g0:0", "g0:2"))
				require.True(t, g.HasEdge("g1:1", "g1:2"))
				require.False(t, g.HasEdge("g0:0", "g1:0"))
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Order())
			require.Equal(t, tc.wantE, g.Size())
			require.NoError(t, g.Validate())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(4, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Prefixed(nil)", builder.Prefixed("x", nil), builder.ErrConstructFailed},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []string {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.2))
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		return adjacency(g)
	}
	require.Equal(t, build(42), build(42))
}

func TestOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithIDScheme(func(i int) string { return fmt.Sprintf("v%02d", i) }),
			builder.WithPartitionPrefix("U", ""),
		},
		builder.Path(3),
		builder.CompleteBipartite(1, 1),
	)
	require.NoError(t, err)
	require.True(t, g.HasEdge("v00", "v01"))
	require.True(t, g.HasEdge("U0", "R0"))

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestPrefixedNests(t *testing.T) {
	t.Parallel()

	g := builder.MustBuild(nil, builder.Prefixed("a/", builder.Prefixed("b/", builder.Grid(1, 2))))
	require.True(t, g.HasEdge("a/b/0,0", "a/b/0,1"))
}
