package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *graph.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Result
}

// Distances runs a breadth-first search seeded with every vertex in sources
// at depth 0 and returns unweighted distances to the nearest source.
//
// The vertex flag of g is used as the visited marker: all flags are cleared
// before the search and again before returning, so callers must not rely on
// flag values across this call. Duplicate sources are ignored.
//
// Errors: ErrGraphNil, ErrNoSources, ErrSourceNotFound,
// context errors and wrapped OnVisit errors.
//
// Complexity: O(V + E) time, O(V) space.
func Distances(g *graph.Graph, sources []*graph.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if !g.Owns(s) {
			id := "<nil>"
			if s != nil {
				id = s.ID()
			}
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, id)
		}
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}

	g.ClearFlags()
	defer g.ClearFlags()

	for _, s := range sources {
		if !s.Flag() {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and queues it.
func (w *walker) enqueue(v *graph.Vertex, d int) {
	v.SetFlag(true)
	w.res.Depth[v.ID()] = d
	if d > w.res.MaxDepth {
		w.res.MaxDepth = d
	}
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		w.res.Order = append(w.res.Order, item.v.ID())
		if err := w.opts.OnVisit(item.v.ID(), item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.v.ID(), err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor one level deeper.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range item.v.Neighbors() {
		if !nbr.Flag() {
			w.enqueue(nbr, item.depth+1)
		}
	}
}
