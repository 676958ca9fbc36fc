package reorder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmatch/bfs"
	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/matching"
)

// ReorderByLevels assigns every vertex of g a new index so that indices grow
// with the pseudo-temperature between sinks (T = 0) and sources (T = 1), and
// vertices matched inside one temperature level get consecutive indices.
//
// Steps:
//  1. BFS distances d0 from sinks and d1 from sources (NaN if unreachable).
//  2. T = d0/(d0+d1) when both are finite and not both zero; 0 when only
//     d1 is finite; 1 when only d0 is finite; 0.5 when neither is; 0 when
//     both are zero.
//  3. L = max(dmax+1, MinLevels) levels; v goes to clamp(round(T·(L-1))).
//  4. Levels are numbered in increasing order. Inside a level vertices keep
//     container order; a level with two or more vertices is matched on its
//     induced subgraph and each matched partner follows its mate.
//  5. With WithSort the container is sorted by the new indices.
//
// The vertex flags of g are used by the BFS passes and are clear on return.
// The context is checked between levels; after a cancellation the levels
// already processed keep their new indices.
//
// Errors: ErrGraphNil, ErrNoSinks, ErrNoSources, ErrForeignVertex,
// ErrOverlap, ErrOptionViolation, context errors, and wrapped bfs or
// matching errors.
//
// Complexity: O(V + E) for distances and binning plus one matching per
// level, O(√V · E) overall.
func ReorderByLevels(g *graph.Graph, sinks, sources []*graph.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkSets(g, sinks, sources); err != nil {
		return nil, err
	}

	d0, err := bfs.Distances(g, sinks, distanceOptions(o, "sinks")...)
	if err != nil {
		return nil, fmt.Errorf("reorder: sink distances: %w", err)
	}
	d1, err := bfs.Distances(g, sources, distanceOptions(o, "sources")...)
	if err != nil {
		return nil, fmt.Errorf("reorder: source distances: %w", err)
	}

	dmax := d0.MaxDepth
	if d1.MaxDepth > dmax {
		dmax = d1.MaxDepth
	}
	levels := dmax + 1
	if levels < o.MinLevels {
		levels = o.MinLevels
	}

	res := &Result{
		Levels:      levels,
		LevelSizes:  make([]int, levels),
		MaxDistance: float64(dmax),
	}

	bins := make([][]*graph.Vertex, levels)
	for _, v := range g.Vertices() {
		t := Temperature(d0.Distance(v.ID()), d1.Distance(v.ID()))
		if o.Temperature != nil {
			o.Temperature[v.ID()] = t
		}
		l := bin(t, levels)
		bins[l] = append(bins[l], v)
		res.LevelSizes[l]++
	}

	next := 0
	for l, level := range bins {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if len(level) == 0 {
			continue
		}
		partner, pairs, err := matchLevel(g, level, o)
		if err != nil {
			return nil, fmt.Errorf("reorder: level %d: %w", l, err)
		}
		res.Pairs += pairs

		assigned := make([]bool, len(level))
		for i, v := range level {
			if assigned[i] {
				continue
			}
			v.SetIndex(next)
			next++
			assigned[i] = true
			if w := partner[i]; w != matching.Unmatched && !assigned[w] {
				level[w].SetIndex(next)
				next++
				assigned[w] = true
				res.Matched = append(res.Matched, [2]string{v.ID(), level[w].ID()})
			}
		}

		if o.Logger != nil {
			o.Logger.Debug("reorder level", "level", l, "size", len(level), "pairs", pairs)
		}
	}

	res.MeanSinkIndex = meanIndex(sinks)
	res.MeanSourceIndex = meanIndex(sources)

	if o.Sort {
		g.SortByIndex()
	}

	return res, nil
}

// distanceOptions configures one BFS pass; with a logger every visit is
// logged at debug level.
func distanceOptions(o Options, from string) []bfs.Option {
	opts := []bfs.Option{bfs.WithContext(o.Ctx)}
	if o.Logger != nil {
		l := o.Logger
		opts = append(opts, bfs.WithOnVisit(func(id string, depth int) error {
			l.Debug("distance", "from", from, "vertex", id, "depth", depth)
			return nil
		}))
	}

	return opts
}

// Temperature maps the distances from the sink set (d0) and the source set
// (d1) to a pseudo-temperature in [0, 1]. NaN marks an unreachable set.
func Temperature(d0, d1 float64) float64 {
	nan0, nan1 := math.IsNaN(d0), math.IsNaN(d1)
	switch {
	case nan0 && nan1:
		return 0.5
	case nan0:
		return 0
	case nan1:
		return 1
	case d0+d1 == 0:
		return 0
	}

	return d0 / (d0 + d1)
}

// bin places temperature t into one of levels buckets.
func bin(t float64, levels int) int {
	l := int(math.Round(t * float64(levels-1)))
	if l < 0 {
		return 0
	}
	if l > levels-1 {
		return levels - 1
	}

	return l
}

// matchLevel runs the matcher on the subgraph induced by level. partner is
// indexed by position in level.
func matchLevel(g *graph.Graph, level []*graph.Vertex, o Options) ([]int, int, error) {
	if len(level) < 2 {
		partner := make([]int, len(level))
		for i := range partner {
			partner[i] = matching.Unmatched
		}
		return partner, 0, nil
	}

	sub, err := g.Induced(level)
	if err != nil {
		return nil, 0, err
	}
	m, err := matching.Match(sub, o.Matcher...)
	if err != nil {
		return nil, 0, err
	}

	return m.Partner, m.Cardinality, nil
}

func checkSets(g *graph.Graph, sinks, sources []*graph.Vertex) error {
	if len(sinks) == 0 {
		return ErrNoSinks
	}
	if len(sources) == 0 {
		return ErrNoSources
	}

	side := make(map[*graph.Vertex]bool, len(sinks))
	for _, v := range sinks {
		if !g.Owns(v) {
			return fmt.Errorf("%w: sink %s", ErrForeignVertex, describe(v))
		}
		side[v] = true
	}
	for _, v := range sources {
		if !g.Owns(v) {
			return fmt.Errorf("%w: source %s", ErrForeignVertex, describe(v))
		}
		if side[v] {
			return fmt.Errorf("%w: %q", ErrOverlap, v.ID())
		}
	}

	return nil
}

func describe(v *graph.Vertex) string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%q", v.ID())
}

func meanIndex(vs []*graph.Vertex) float64 {
	x := make([]float64, len(vs))
	for i, v := range vs {
		x[i] = float64(v.Index())
	}

	return stat.Mean(x, nil)
}
