package matching

// augment rebuilds, validates and applies the augmenting path found by DDFS
// call k, then erases its vertices for the rest of the phase. Nothing is
// toggled unless the whole path checks out; a failed attempt is counted as a
// soft failure.
func (m *Matcher) augment(x, y, fr, fg, k int) bool {
	if !m.buildPath(x, y, fr, fg, k) || !m.validPath() {
		m.soft()
		return false
	}

	p := m.path
	for j := 0; j+1 < len(p); j += 2 {
		m.match[p[j]] = p[j+1]
		m.match[p[j+1]] = p[j]
	}
	m.erase(p)

	return true
}

// validPath checks that m.path is a simple alternating path between two
// free, non-erased vertices whose consecutive vertices are adjacent.
func (m *Matcher) validPath() bool {
	p := m.path
	if len(p) < 2 || len(p)%2 == 1 {
		return false
	}
	if m.match[p[0]] != Unmatched || m.match[p[len(p)-1]] != Unmatched {
		return false
	}

	m.seen.reset()
	for j, v := range p {
		if m.erased.has(v) || m.seen.visited(v) {
			return false
		}
		m.seen.visit(v)
		if j == 0 {
			continue
		}
		u := p[j-1]
		if m.g.edgeID(u, v) == none {
			return false
		}
		// edge j-1 must be matched exactly when j is even
		if (m.match[u] == v) != (j%2 == 0) {
			return false
		}
	}

	return true
}

// erase removes the vertices of p and, transitively, every vertex left
// without predecessors.
func (m *Matcher) erase(p []int) {
	st := append(m.eraseStack[:0], p...)
	for len(st) > 0 {
		v := st[len(st)-1]
		st = st[:len(st)-1]
		if m.erased.has(v) {
			continue
		}
		m.erased.set(v)
		for cell := m.deps.first(v); cell != none; cell = m.deps.succ(cell) {
			w := m.deps.value(cell)
			m.predCount[w]--
			if m.predCount[w] == 0 {
				st = append(st, w)
			}
		}
	}
	m.eraseStack = st
}
