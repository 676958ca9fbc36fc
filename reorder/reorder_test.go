package reorder_test

import (
	"bytes"
	"context"
	"math"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/reorder"
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

// requirePermutation checks that the indices of g are exactly 0..V-1.
func requirePermutation(t *testing.T, g *graph.Graph) {
	t.Helper()
	idx := make([]int, 0, g.Order())
	for _, v := range g.Vertices() {
		idx = append(idx, v.Index())
	}
	sort.Ints(idx)
	for i, x := range idx {
		require.Equal(t, i, x)
	}
}

func indexOf(t *testing.T, g *graph.Graph, id string) int {
	t.Helper()
	v, err := g.MustVertex(id)
	require.NoError(t, err)
	return v.Index()
}

type ReorderSuite struct {
	suite.Suite
}

func TestReorderSuite(t *testing.T) {
	suite.Run(t, new(ReorderSuite))
}

func (s *ReorderSuite) TestGrid3x3() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	temp := make(map[string]float64)
	res, err := reorder.ReorderByLevels(g,
		vertices(t, g, builder.GridID(0, 0)), vertices(t, g, builder.GridID(2, 2)),
		reorder.WithTemperature(temp))
	require.NoError(t, err)

	requirePermutation(t, g)
	require.Equal(t, 0, indexOf(t, g, builder.GridID(0, 0)))
	require.Equal(t, g.Order()-1, indexOf(t, g, builder.GridID(2, 2)))

	require.Equal(t, 10, res.Levels)
	require.Equal(t, 4.0, res.MaxDistance)
	require.Equal(t, []int{1, 0, 2, 0, 0, 3, 0, 2, 0, 1}, res.LevelSizes)
	require.Zero(t, res.Pairs)
	require.Equal(t, 0.0, res.MeanSinkIndex)
	require.Equal(t, 8.0, res.MeanSourceIndex)

	require.Len(t, temp, 9)
	require.Equal(t, 0.0, temp[builder.GridID(0, 0)])
	require.Equal(t, 0.5, temp[builder.GridID(1, 1)])
	require.Equal(t, 1.0, temp[builder.GridID(2, 2)])

	// indices grow with the anti-diagonal
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			for r2 := 0; r2 < 3; r2++ {
				for c2 := 0; c2 < 3; c2++ {
					if r+c < r2+c2 {
						require.Less(t, indexOf(t, g, builder.GridID(r, c)), indexOf(t, g, builder.GridID(r2, c2)))
					}
				}
			}
		}
	}
}

// TestPairing builds a middle level {a,b,c,d} with edges a–b and c–d.
func (s *ReorderSuite) TestPairing() {
	t := s.T()
	g := graph.NewGraph()
	for _, m := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddEdge("s", m))
		require.NoError(t, g.AddEdge(m, "t"))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("c", "d"))

	res, err := reorder.ReorderByLevels(g, vertices(t, g, "s"), vertices(t, g, "t"))
	require.NoError(t, err)
	requirePermutation(t, g)

	require.Equal(t, 2, res.Pairs)
	require.Equal(t, [][2]string{{"a", "b"}, {"c", "d"}}, res.Matched)
	require.Equal(t, 0, indexOf(t, g, "s"))
	require.Equal(t, 1, indexOf(t, g, "a"))
	require.Equal(t, 2, indexOf(t, g, "b"))
	require.Equal(t, 3, indexOf(t, g, "c"))
	require.Equal(t, 4, indexOf(t, g, "d"))
	require.Equal(t, 5, indexOf(t, g, "t"))
}

func (s *ReorderSuite) TestSort() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	_, err = reorder.ReorderByLevels(g, vertices(t, g, "4"), vertices(t, g, "0"), reorder.WithSort(true))
	require.NoError(t, err)
	require.NoError(t, g.Validate())

	var ids []string
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID())
	}
	require.Equal(t, []string{"4", "3", "2", "1", "0"}, ids)
}

func (s *ReorderSuite) TestUnreachable() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Disjoint(builder.Path(3), builder.Path(2)))
	require.NoError(t, err)

	temp := make(map[string]float64)
	_, err = reorder.ReorderByLevels(g,
		vertices(t, g, "g0:0"), vertices(t, g, "g0:2"),
		reorder.WithTemperature(temp))
	require.NoError(t, err)
	requirePermutation(t, g)
	require.Equal(t, 0.5, temp["g1:0"])
	require.Equal(t, 0.5, temp["g1:1"])
	require.Equal(t, 0.5, temp["g0:1"])
}

func (s *ReorderSuite) TestMinLevels() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)

	res, err := reorder.ReorderByLevels(g, vertices(t, g, "0"), vertices(t, g, "2"), reorder.WithMinLevels(1))
	require.NoError(t, err)
	require.Equal(t, 3, res.Levels)
	require.Equal(t, []int{1, 1, 1}, res.LevelSizes)
}

func (s *ReorderSuite) TestLogger() {
	t := s.T()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	_, err = reorder.ReorderByLevels(g, vertices(t, g, "0"), vertices(t, g, "3"),
		reorder.WithLogger(logger), reorder.WithMatcherOptions(matching.WithGreedy(false)))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "reorder level")
	require.Contains(t, buf.String(), "from=sinks")
}

func (s *ReorderSuite) TestMatchAfterUnsortedReorder() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	_, err = reorder.ReorderByLevels(g,
		vertices(t, g, builder.GridID(0, 0)), vertices(t, g, builder.GridID(2, 2)))
	require.NoError(t, err)
	require.ErrorIs(t, g.Validate(), graph.ErrIndexMismatch)

	res, err := matching.Match(g)
	require.NoError(t, err)
	require.Equal(t, 4, res.Cardinality)
	for p, q := range res.Partner {
		if q == matching.Unmatched {
			continue
		}
		require.Equal(t, p, res.Partner[q])
		require.True(t, g.HasEdge(g.At(p).ID(), g.At(q).ID()))
	}
}

// cancelWriter cancels a context once a log line containing marker is written.
type cancelWriter struct {
	marker string
	cancel context.CancelFunc
}

func (w cancelWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte(w.marker)) {
		w.cancel()
	}
	return len(p), nil
}

func (s *ReorderSuite) TestCancelBetweenLevels() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := log.NewWithOptions(&cancelWriter{marker: "reorder level", cancel: cancel},
		log.Options{Level: log.DebugLevel})

	_, err = reorder.ReorderByLevels(g,
		vertices(t, g, builder.GridID(0, 0)), vertices(t, g, builder.GridID(2, 2)),
		reorder.WithContext(ctx), reorder.WithLogger(logger))
	require.ErrorIs(t, err, context.Canceled)
	require.NotContains(t, err.Error(), "distances")
	require.Equal(t, 0, indexOf(t, g, builder.GridID(0, 0)))
}

func (s *ReorderSuite) TestErrors() {
	t := s.T()
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	other, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	a := vertices(t, g, "0")
	b := vertices(t, g, "2")

	_, err = reorder.ReorderByLevels(nil, a, b)
	require.ErrorIs(t, err, reorder.ErrGraphNil)
	_, err = reorder.ReorderByLevels(g, nil, b)
	require.ErrorIs(t, err, reorder.ErrNoSinks)
	_, err = reorder.ReorderByLevels(g, a, nil)
	require.ErrorIs(t, err, reorder.ErrNoSources)
	_, err = reorder.ReorderByLevels(g, vertices(t, other, "0"), b)
	require.ErrorIs(t, err, reorder.ErrForeignVertex)
	_, err = reorder.ReorderByLevels(g, a, []*graph.Vertex{nil})
	require.ErrorIs(t, err, reorder.ErrForeignVertex)
	_, err = reorder.ReorderByLevels(g, a, append(b, a[0]))
	require.ErrorIs(t, err, reorder.ErrOverlap)
	_, err = reorder.ReorderByLevels(g, a, b, reorder.WithMinLevels(0))
	require.ErrorIs(t, err, reorder.ErrOptionViolation)

	// vertices 1 and 5 of a hexagon share a level, so the matcher runs
	hex, err := builder.BuildGraph(nil, builder.Cycle(6))
	require.NoError(t, err)
	_, err = reorder.ReorderByLevels(hex, vertices(t, hex, "0"), vertices(t, hex, "3"),
		reorder.WithMatcherOptions(matching.WithCertifyLimit(-1)))
	require.ErrorIs(t, err, matching.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reorder.ReorderByLevels(g, a, b, reorder.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { reorder.WithTemperature(nil) })
}

func TestTemperature(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name   string
		d0, d1 float64
		want   float64
	}{
		{"both finite", 1, 3, 0.25},
		{"sink side", 0, 4, 0},
		{"source side", 4, 0, 1},
		{"only source reachable", nan, 2, 0},
		{"only sink reachable", 2, nan, 1},
		{"unreachable", nan, nan, 0.5},
		{"both zero", 0, 0, 0},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, reorder.Temperature(tc.d0, tc.d1), tc.name)
	}
}

// TestProperties checks the permutation, flow and pairing properties on
// random connected graphs: a random graph plus a Hamiltonian path.
func TestProperties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 20 + int(seed)*3
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(n, 0.08))
		require.NoError(t, err)
		vs := g.Vertices()
		for i := 0; i+1 < n; i++ {
			if !g.HasEdge(vs[i].ID(), vs[i+1].ID()) {
				require.NoError(t, g.Connect(vs[i], vs[i+1]))
			}
		}

		sinks := vs[:3]
		sources := vs[n-3:]
		res, err := reorder.ReorderByLevels(g, sinks, sources)
		require.NoError(t, err, "seed %d", seed)

		requirePermutation(t, g)
		require.LessOrEqual(t, res.MeanSinkIndex, res.MeanSourceIndex, "seed %d", seed)
		require.Len(t, res.Matched, res.Pairs)
		for _, p := range res.Matched {
			require.True(t, g.HasEdge(p[0], p[1]))
			require.Equal(t, indexOf(t, g, p[0])+1, indexOf(t, g, p[1]), "seed %d pair %v", seed, p)
		}

		total := 0
		for _, sz := range res.LevelSizes {
			total += sz
		}
		require.Equal(t, n, total)
	}
}
