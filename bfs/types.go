// Package bfs provides tunable options and error definitions
// for multi-source breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoSources is returned when the source set is empty.
	ErrNoSources = errors.New("bfs: no source vertices")

	// ErrSourceNotFound is returned when a source does not belong to the graph.
	ErrSourceNotFound = errors.New("bfs: source vertex not in graph")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns Options with background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a multi-source BFS:
//   - Order: vertex IDs in visit sequence (sources first, in the given order).
//   - Depth: distance (in edges) from the nearest source, reached vertices only.
//   - MaxDepth: largest finite distance.
type Result struct {
	Order    []string
	Depth    map[string]int
	MaxDepth int
}

// Distance returns the distance of id from the source set,
// or NaN if id was not reached.
func (r *Result) Distance(id string) float64 {
	d, ok := r.Depth[id]
	if !ok {
		return math.NaN()
	}

	return float64(d)
}
