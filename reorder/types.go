package reorder

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmatch/matching"
)

// DefaultMinLevels is the smallest number of temperature levels used by
// ReorderByLevels.
const DefaultMinLevels = 10

// Sentinel errors for ReorderByLevels.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reorder: graph is nil")

	// ErrNoSinks is returned when the sink set is empty.
	ErrNoSinks = errors.New("reorder: no sink vertices")

	// ErrNoSources is returned when the source set is empty.
	ErrNoSources = errors.New("reorder: no source vertices")

	// ErrForeignVertex is returned when a sink or source is not a vertex of the graph.
	ErrForeignVertex = errors.New("reorder: vertex not in graph")

	// ErrOverlap is returned when a vertex is both a sink and a source.
	ErrOverlap = errors.New("reorder: sinks and sources overlap")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reorder: invalid option supplied")
)

// Option configures ReorderByLevels via functional arguments.
type Option func(*Options)

// Options holds the knobs of ReorderByLevels.
type Options struct {
	// Ctx cancels the distance searches and is checked between levels.
	Ctx context.Context

	// Sort reorders the graph container by the new indices afterwards.
	Sort bool

	// Temperature, when non-nil, receives id → T for every vertex.
	Temperature map[string]float64

	// MinLevels is the floor for the number of levels.
	MinLevels int

	// Matcher is passed to every per-level matching.Match call.
	Matcher []matching.Option

	// Logger receives a debug line per level; nil keeps the call silent.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Ctx = Background, no sort, no temperature output
// and MinLevels = DefaultMinLevels.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MinLevels: DefaultMinLevels,
	}
}

// WithContext sets a cancellation context.
// Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("reorder: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithSort toggles re-sorting of the graph container by the new indices.
func WithSort(on bool) Option {
	return func(o *Options) {
		o.Sort = on
	}
}

// WithTemperature requests the pseudo-temperature of every vertex, keyed by
// vertex ID. Existing entries of out are overwritten.
// Panics if out is nil.
func WithTemperature(out map[string]float64) Option {
	if out == nil {
		panic("reorder: WithTemperature(nil)")
	}
	return func(o *Options) {
		o.Temperature = out
	}
}

// WithMinLevels sets the level-count floor. n must be at least 1.
func WithMinLevels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinLevels must be ≥ 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.MinLevels = n
	}
}

// WithMatcherOptions forwards options to every per-level matching run.
func WithMatcherOptions(opts ...matching.Option) Option {
	return func(o *Options) {
		o.Matcher = append(o.Matcher, opts...)
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Result summarizes one ReorderByLevels call.
type Result struct {
	// Levels is the number of temperature levels L.
	Levels int

	// LevelSizes[l] is the number of vertices binned into level l.
	LevelSizes []int

	// Pairs is the total number of matched pairs over all levels.
	Pairs int

	// Matched lists the matched pairs by vertex ID; each pair holds
	// consecutive indices.
	Matched [][2]string

	// MaxDistance is the largest finite BFS distance from either set.
	MaxDistance float64

	// MeanSinkIndex and MeanSourceIndex are the mean new indices of the two
	// sets.
	MeanSinkIndex   float64
	MeanSourceIndex float64
}
