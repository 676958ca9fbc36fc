package matching

// taskKind enumerates the frames of the iterative path builder.
type taskKind uint8

const (
	// taskFind: descend from v to low inside blossom context blossom,
	// restricted to vertices coloured color (0 = any).
	taskFind taskKind = iota
	// taskClimb: emit v and the bases of its enclosing blossoms up to low.
	taskClimb
	// taskOpen: emit a path from v to the base of blossom[v].
	taskOpen
	// taskBeginReverse / taskEndReverse delimit a segment to invert.
	taskBeginReverse
	taskEndReverse
)

// task is one frame of the explicit work stack. odd is the parity of the
// level at which v is entered.
type task struct {
	kind    taskKind
	v, low  int
	blossom int
	color   int
	odd     bool
}

// frame is one step of the DFS inside taskFind.
type frame struct {
	v, cell, via int
}

// buildPath rebuilds the augmenting path found by DDFS call k for bridge
// x–y whose left and right searches reached the free vertices fr and fg.
// The result, from fr to fg, is left in m.path. It returns false when no
// consistent path can be rebuilt.
func (m *Matcher) buildPath(x, y, fr, fg, k int) bool {
	m.path = m.path[:0]
	m.marks = m.marks[:0]
	m.tasks = m.tasks[:0]

	odd := m.match[x] == y
	m.push(task{kind: taskFind, v: y, low: fg, blossom: none, color: -k, odd: odd})
	m.push(task{kind: taskEndReverse})
	m.push(task{kind: taskFind, v: x, low: fr, blossom: none, color: k, odd: odd})
	m.push(task{kind: taskBeginReverse})

	budget := 8*(m.n+m.g.edges()) + 32
	for len(m.tasks) > 0 {
		if budget--; budget < 0 {
			return false
		}
		t := m.tasks[len(m.tasks)-1]
		m.tasks = m.tasks[:len(m.tasks)-1]

		switch t.kind {
		case taskBeginReverse:
			m.marks = append(m.marks, len(m.path))

		case taskEndReverse:
			mk := m.marks[len(m.marks)-1]
			m.marks = m.marks[:len(m.marks)-1]
			seg := m.path[mk:]
			for a, b := 0, len(seg)-1; a < b; a, b = a+1, b-1 {
				seg[a], seg[b] = seg[b], seg[a]
			}

		case taskClimb:
			if t.v == t.low {
				m.emit(t.v)
				continue
			}
			b := m.blossom[t.v]
			if b == none {
				return false
			}
			base := m.bBase[b]
			m.push(task{kind: taskClimb, v: base, low: t.low, odd: m.minOdd(base)})
			m.push(task{kind: taskOpen, v: t.v, odd: t.odd})

		case taskOpen:
			if !m.open(t) {
				return false
			}

		case taskFind:
			if !m.descend(t) {
				return false
			}
		}
	}

	return true
}

func (m *Matcher) push(t task) { m.tasks = append(m.tasks, t) }

// emit appends v unless it repeats the last vertex of the current segment.
func (m *Matcher) emit(v int) {
	start := 0
	if len(m.marks) > 0 {
		start = m.marks[len(m.marks)-1]
	}
	if len(m.path) > start && m.path[len(m.path)-1] == v {
		return
	}
	m.path = append(m.path, v)
}

// open schedules the path from t.v to the base of its blossom. A vertex
// entered at its minimum level descends directly; otherwise the path climbs
// to the peak on the vertex's own side, crosses the bridge and descends the
// other side.
func (m *Matcher) open(t task) bool {
	b := m.blossom[t.v]
	if b == none {
		return false
	}
	base := m.bBase[b]
	if t.odd == m.minOdd(t.v) {
		m.push(task{kind: taskFind, v: t.v, low: base, blossom: b, odd: t.odd})
		return true
	}

	own, other := m.bPeakL[b], m.bPeakR[b]
	cOwn := m.bCall[b]
	switch m.lr[t.v] {
	case cOwn:
	case -cOwn:
		own, other, cOwn = other, own, -cOwn
	default:
		return false
	}
	m.push(task{kind: taskFind, v: other, low: base, blossom: b, color: -cOwn, odd: m.bOdd[b]})
	m.push(task{kind: taskEndReverse})
	m.push(task{kind: taskFind, v: own, low: t.v, blossom: b, color: cOwn, odd: m.bOdd[b]})
	m.push(task{kind: taskBeginReverse})

	return true
}

// nodeOf climbs from a through enclosing blossoms until it reaches low or a
// direct member of blossom b (a vertex outside every blossom when b is none).
// It returns none when the chain leaves b.
func (m *Matcher) nodeOf(a, b, low int) int {
	y := a
	for steps := 0; steps <= m.n; steps++ {
		if y == low || m.blossom[y] == b {
			return y
		}
		bl := m.blossom[y]
		if bl == none || (b != none && bl > b) {
			return none
		}
		y = m.bBase[bl]
	}

	return none
}

// descend searches from t.v down to t.low and schedules the climbs that
// emit the path. A coloured search follows the DDFS child edges of that
// colour; an uncoloured one follows predecessors. Levels strictly decrease
// along both, so the search visits every vertex at most once.
func (m *Matcher) descend(t task) bool {
	low := t.low
	start := m.nodeOf(t.v, t.blossom, low)
	if start == none {
		return false
	}
	edges := m.preds
	if t.color != 0 {
		edges = m.kids
	}

	m.frames = m.frames[:0]
	if start != low {
		m.seen.reset()
		m.seen.visit(start)
		m.frames = append(m.frames, frame{v: start, cell: edges.first(start), via: none})
		floor := m.minLevel(low)
		reached := false
		for len(m.frames) > 0 && !reached {
			f := &m.frames[len(m.frames)-1]
			if f.cell == none {
				m.frames = m.frames[:len(m.frames)-1]
				continue
			}
			cell := f.cell
			a := edges.value(cell)
			f.cell = edges.succ(cell)
			if m.erased.has(a) {
				continue
			}
			var y int
			if t.color != 0 {
				y = m.kids.second(cell)
			} else {
				y = m.nodeOf(a, t.blossom, low)
			}
			switch {
			case y == none:
				continue
			case y == low:
				m.frames = append(m.frames, frame{v: low, cell: none, via: a})
				reached = true
				continue
			case m.erased.has(y), m.seen.visited(y), m.minLevel(y) <= floor:
				continue
			case t.color != 0 && m.lr[y] != t.color:
				continue
			}
			m.seen.visit(y)
			m.frames = append(m.frames, frame{v: y, cell: edges.first(y), via: a})
		}
		if !reached {
			return false
		}
	}

	for i := len(m.frames) - 1; i >= 1; i-- {
		f := m.frames[i]
		m.push(task{kind: taskClimb, v: f.via, low: f.v, odd: (m.minLevel(m.frames[i-1].v)-1)%2 == 1})
	}
	m.push(task{kind: taskClimb, v: t.v, low: start, odd: t.odd})

	return true
}
