package matching

import (
	"fmt"
)

// Matcher holds the scratch state of one maximum-matching run.
//
// Every array is allocated by New and reset in place at the start of each
// phase; no allocation happens inside a phase except amortized growth of
// the find-path scratch slices. A Matcher is consumed by a single Run.
type Matcher struct {
	opts Options
	g    *csr
	n    int

	match []int

	// per-vertex phase state
	even, odd []int
	blossom   []int // innermost blossom formed around the vertex, or none
	bstar     []int // union-find pointer towards the outermost base
	lr        []int // +k red, -k green in DDFS call k, 0 untouched
	predCount []int
	cursor    []int // DDFS predecessor cursor (pool cell)
	status    []uint8

	preds, deps, anoms *pool // per-vertex lists
	kids               *pool // DDFS child edges per vertex: (predecessor, its base)
	layers, bridges    *pool // per-level lists
	erased             *bitset
	seen               *visitedSet

	// per-blossom state
	bBase, bPeakL, bPeakR, bCall []int
	bOdd                         []bool
	nBlossoms                    int

	calls    int
	// levelCap bounds the search levels of a phase. A shortest augmenting
	// path has at most V-1 edges, so its bridge lies at search level
	// (V-2)/2 or lower; levels above the cap still exist on long alternating
	// paths but are never queued.
	levelCap int
	topLevel int // highest level holding a queued vertex or bridge

	// DDFS and find-path scratch
	red, green, support []int
	path, marks         []int
	tasks               []task
	frames              []frame
	eraseStack          []int

	softInPhase int
	stats       Stats
	done        bool
}

// edge status bits
const (
	edgeProp   uint8 = 1
	edgeBridge uint8 = 2
)

// New prepares a Matcher for g. The adjacency is copied, so g may be
// modified after New returns.
//
// Errors: ErrNilGraph, ErrOptionViolation and the adjacency errors of
// buildCSR (ErrNeighborRange, ErrSelfLoop, ErrParallelEdge, ErrAsymmetric).
func New(g Graph, opts ...Option) (*Matcher, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c, err := buildCSR(g)
	if err != nil {
		return nil, err
	}

	n, e := c.n, c.edges()
	m := &Matcher{
		opts:      o,
		g:         c,
		n:         n,
		match:     make([]int, n),
		even:      make([]int, n),
		odd:       make([]int, n),
		blossom:   make([]int, n),
		bstar:     make([]int, n),
		lr:        make([]int, n),
		predCount: make([]int, n),
		cursor:    make([]int, n),
		status:    make([]uint8, e),
		erased:    newBitset(n),
		seen:      newVisitedSet(n),
		bBase:     make([]int, n+1),
		bPeakL:    make([]int, n+1),
		bPeakR:    make([]int, n+1),
		bCall:     make([]int, n+1),
		bOdd:      make([]bool, n+1),
		levelCap:  n/2 + 1,
	}
	for v := range m.match {
		m.match[v] = Unmatched
	}
	m.preds = newPool("predecessor", n, e+1)
	m.deps = newPool("dependency", n, e+1)
	m.anoms = newPool("anomaly", n, e+1)
	m.kids = newPairPool("ddfs child", n, e+1)
	m.layers = newPool("layer", m.levelCap+1, 2*n+1)
	m.bridges = newPool("bridge", m.levelCap+1, 2*e+1)

	return m, nil
}

// Match computes a maximum-cardinality matching of g.
//
// The result is deterministic for a fixed adjacency order. Bad adjacency is
// reported through the sentinel errors of New; a broken internal invariant
// is reported as ErrInvariant.
//
// Complexity: O(√V · E) for the MV phases, plus O(V · E) for certification
// when it runs (see WithCertifyLimit).
func Match(g Graph, opts ...Option) (*Result, error) {
	m, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return m.Run()
}

// Run executes the greedy start, MV phases and certification.
func (m *Matcher) Run() (res *Result, err error) {
	if m.done {
		return nil, ErrMatcherUsed
	}
	m.done = true

	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(invariantError)
			if !ok {
				panic(r)
			}
			res, err = nil, fmt.Errorf("%w: %s", ErrInvariant, ie.msg)
		}
	}()

	if m.opts.Greedy {
		m.stats.GreedyMatched = m.greedy()
	}

	for {
		m.stats.Phases++
		found := m.phase()
		m.stats.Augmentations += found
		m.logPhase(found)
		if found > 0 {
			continue
		}
		if m.softInPhase > 0 || m.n <= m.opts.CertifyLimit {
			if extra := m.certify(); extra > 0 {
				m.stats.Certified += extra
				continue
			}
		}
		break
	}

	res = &Result{Partner: make([]int, m.n), Stats: m.stats}
	copy(res.Partner, m.match)
	for v, w := range m.match {
		if w != Unmatched && v < w {
			res.Cardinality++
		}
	}

	return res, nil
}

func (m *Matcher) logPhase(found int) {
	if m.opts.Logger == nil {
		return
	}
	m.opts.Logger.Debug("matching phase",
		"phase", m.stats.Phases,
		"augmented", found,
		"blossoms", m.nBlossoms,
		"soft", m.softInPhase,
		"top", m.topLevel)
}

func (m *Matcher) minLevel(v int) int {
	if m.even[v] < m.odd[v] {
		return m.even[v]
	}

	return m.odd[v]
}

// minOdd reports whether the minimum level of v is odd.
func (m *Matcher) minOdd(v int) bool { return m.odd[v] < m.even[v] }

// level returns the level of v with the given parity.
func (m *Matcher) level(v int, odd bool) int {
	if odd {
		return m.odd[v]
	}

	return m.even[v]
}

// setLevel assigns level l to v and queues v for scanning at l.
func (m *Matcher) setLevel(v, l int) {
	if l%2 == 0 {
		m.even[v] = l
	} else {
		m.odd[v] = l
	}
	if l <= m.levelCap {
		m.layers.push(l, v)
		if l > m.topLevel {
			m.topLevel = l
		}
	}
}

// tenacity of edge u–v: sum of the same-parity levels plus one, or inf.
func (m *Matcher) tenacity(u, v int, odd bool) int {
	a, b := m.level(u, odd), m.level(v, odd)
	if a == inf || b == inf {
		return inf
	}

	return a + b + 1
}

// queueBridge files edge e under search level (t-1)/2.
func (m *Matcher) queueBridge(e, t int) {
	l := (t - 1) / 2
	if l > m.levelCap {
		return
	}
	m.bridges.push(l, e)
	if l > m.topLevel {
		m.topLevel = l
	}
}

func (m *Matcher) resetPhase() {
	for v := 0; v < m.n; v++ {
		m.even[v], m.odd[v] = inf, inf
		m.blossom[v] = none
		m.bstar[v] = v
		m.lr[v] = 0
		m.predCount[v] = 0
		m.cursor[v] = unscanned
	}
	for e := range m.status {
		m.status[e] = 0
	}
	m.preds.reset()
	m.deps.reset()
	m.anoms.reset()
	m.kids.reset()
	m.layers.reset()
	m.bridges.reset()
	m.erased.clear()
	m.nBlossoms = 0
	m.topLevel = 0
	m.softInPhase = 0
}

// phase runs one layered search and returns the number of augmentations.
func (m *Matcher) phase() int {
	m.resetPhase()
	for v := 0; v < m.n; v++ {
		if m.match[v] == Unmatched {
			m.setLevel(v, 0)
		}
	}

	found := 0
	for i := 0; i <= m.levelCap && i <= m.topLevel; i++ {
		for !m.layers.empty(i) {
			m.scan(m.layers.pop(i), i)
		}
		for !m.bridges.empty(i) {
			if m.blsaug(m.bridges.pop(i), i) {
				found++
			}
		}
		if found > 0 {
			break
		}
	}

	return found
}

// scan classifies the unscanned edges of v at level i: unmatched edges at
// even levels, the matched edge at odd levels.
func (m *Matcher) scan(v, i int) {
	if m.erased.has(v) {
		return
	}
	odd := i%2 == 1
	if odd {
		u := m.match[v]
		if u == Unmatched {
			return
		}
		e := m.g.edgeID(v, u)
		if e == none {
			assertf("matched pair %d–%d is not an edge", v, u)
		}
		m.classify(v, u, e, i)
		return
	}
	for k := m.g.start[v]; k < m.g.start[v+1]; k++ {
		u := m.g.adj[k]
		if u == m.match[v] {
			continue
		}
		m.classify(v, u, m.g.edge[k], i)
	}
}

// classify turns edge v–u scanned from level i into a prop edge, a bridge or
// an anomaly hanging at u.
func (m *Matcher) classify(v, u, e, i int) {
	if m.status[e] != 0 {
		return
	}
	if m.minLevel(u) >= i+1 {
		m.status[e] = edgeProp
		if m.minLevel(u) == inf {
			m.setLevel(u, i+1)
		}
		m.preds.push(u, v)
		m.deps.push(v, u)
		m.predCount[u]++
		return
	}

	m.status[e] = edgeBridge
	if t := m.tenacity(v, u, i%2 == 1); t != inf {
		m.queueBridge(e, t)
		return
	}
	m.anoms.push(u, e)
}

// bastar returns the outermost base of the blossoms containing v, with path
// compression.
func (m *Matcher) bastar(v int) int {
	r := v
	for m.bstar[r] != r {
		r = m.bstar[r]
	}
	for m.bstar[v] != r {
		next := m.bstar[v]
		m.bstar[v] = r
		v = next
	}

	return r
}
