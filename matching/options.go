package matching

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// DefaultCertifyLimit is the largest vertex count for which every run ends
// with an exhaustive Edmonds search.
const DefaultCertifyLimit = 1024

// Option configures a Matcher via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the matcher knobs.
type Options struct {
	// Greedy enables the degree-ordered greedy start.
	Greedy bool

	// CertifyLimit bounds the vertex count for unconditional certification.
	// Zero disables it; certification still runs after a soft failure.
	CertifyLimit int

	// Logger receives per-phase debug summaries; nil keeps the matcher silent.
	Logger *log.Logger

	err error
}

// DefaultOptions returns greedy start on, CertifyLimit = DefaultCertifyLimit
// and no logger.
func DefaultOptions() Options {
	return Options{
		Greedy:       true,
		CertifyLimit: DefaultCertifyLimit,
	}
}

// WithGreedy toggles the greedy initial matching.
func WithGreedy(on bool) Option {
	return func(o *Options) {
		o.Greedy = on
	}
}

// WithCertifyLimit sets the vertex count up to which a final Edmonds search
// certifies every result.
//
//	n > 0:  certify graphs with at most n vertices
//	n == 0: certify only after soft failures
//	n < 0:  invalid option → ErrOptionViolation
func WithCertifyLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CertifyLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.CertifyLimit = n
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
