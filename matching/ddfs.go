package matching

// blsaug processes bridge e at search level i with a double depth-first
// search. It either augments the matching (returns true), contracts a new
// blossom, or does nothing when the bridge is already inside a blossom or
// touches erased vertices.
func (m *Matcher) blsaug(e, i int) bool {
	x, y := m.g.eu[e], m.g.ev[e]
	if m.erased.has(x) || m.erased.has(y) {
		return false
	}
	r, g := m.bastar(x), m.bastar(y)
	if r == g || m.erased.has(r) || m.erased.has(g) {
		return false
	}
	m.stats.Bridges++

	m.calls++
	k := m.calls
	m.red = append(m.red[:0], r)
	m.green = append(m.green[:0], g)
	m.support = append(m.support[:0], r, g)
	m.lr[r], m.lr[g] = k, -k
	m.startCursor(r)
	m.startCursor(g)

	limit := 4*(m.n+m.g.edges()) + 16
	for step := 0; ; step++ {
		if step > limit {
			m.soft()
			return false
		}
		tr, tg := m.red[len(m.red)-1], m.green[len(m.green)-1]
		lvR, lvG := m.minLevel(tr), m.minLevel(tg)
		if lvR == 0 && lvG == 0 {
			return m.augment(x, y, tr, tg, k)
		}

		var dcv int
		if lvR >= lvG {
			dcv = m.advance(&m.red, &m.green, k)
		} else {
			dcv = m.advance(&m.green, &m.red, -k)
		}
		if dcv != none {
			m.formBlossom(dcv, x, y, k, i)
			return false
		}
	}
}

// startCursor points v at its first predecessor unless v was already
// searched in this phase. Predecessor edges are used at most once per phase.
func (m *Matcher) startCursor(v int) {
	if m.cursor[v] == unscanned {
		m.cursor[v] = m.preds.first(v)
	}
}

// advance moves the frontier on top of *own* one step deeper along an
// unused predecessor and records the step as a DDFS child edge. When the
// frontier is exhausted it backtracks; an empty side takes over the other
// side's top, and if the other side is down to a single vertex that vertex
// is returned as the deepest common vertex.
func (m *Matcher) advance(own, other *[]int, color int) int {
	s := *own
	u := s[len(s)-1]
	otherTop := (*other)[len(*other)-1]
	for cell := m.cursor[u]; cell != none; cell = m.preds.succ(cell) {
		a := m.preds.value(cell)
		if m.erased.has(a) {
			continue
		}
		w := m.bastar(a)
		if m.erased.has(w) {
			continue
		}
		if m.lr[w] != 0 {
			// the other side may hand its top over later
			if w == otherTop {
				m.kids.pushPair(u, a, w)
			}
			continue
		}
		m.cursor[u] = m.preds.succ(cell)
		m.lr[w] = color
		m.startCursor(w)
		m.kids.pushPair(u, a, w)
		*own = append(s, w)
		m.support = append(m.support, w)
		return none
	}
	m.cursor[u] = none

	s = s[:len(s)-1]
	*own = s
	if len(s) > 0 {
		return none
	}
	o := *other
	top := o[len(o)-1]
	if len(o) == 1 {
		m.lr[top] = 0
		return top
	}
	*other = o[:len(o)-1]
	m.lr[top] = color
	*own = append(s, top)

	return none
}

// formBlossom contracts the vertices touched by DDFS call k around dcv.
// Each member receives its missing level 2i+1-minLevel, is queued at that
// level and replays the anomalies hanging on it as bridges.
func (m *Matcher) formBlossom(dcv, x, y, k, i int) {
	b := m.nBlossoms
	if b >= len(m.bBase) {
		assertf("blossom table overflow (capacity %d)", len(m.bBase))
	}
	m.nBlossoms++
	m.stats.Blossoms++
	m.bBase[b] = dcv
	m.bPeakL[b], m.bPeakR[b] = x, y
	m.bCall[b] = k
	m.bOdd[b] = m.match[x] == y

	for _, v := range m.support {
		if v == dcv {
			continue
		}
		m.blossom[v] = b
		m.bstar[v] = dcv

		lv := 2*i + 1 - m.minLevel(v)
		if lv > i && m.level(v, lv%2 == 1) == inf {
			m.setLevel(v, lv)
		}
		for !m.anoms.empty(v) {
			e := m.anoms.pop(v)
			u := m.g.other(e, v)
			if t := m.tenacity(v, u, m.match[v] == u); t != inf {
				m.queueBridge(e, t)
			}
		}
	}
}

// soft records an abandoned augmentation.
func (m *Matcher) soft() {
	m.softInPhase++
	m.stats.SoftFailures++
}
