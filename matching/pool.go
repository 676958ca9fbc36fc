package matching

// pool stores many singly linked stacks in two fixed arrays.
//
// Every list is identified by its head slot. Cells come from the free chain
// first and from the untouched tail otherwise; pop returns the cell to the
// free chain. Capacity is fixed at construction and exceeding it is an
// invariant violation.
type pool struct {
	name string
	next []int
	val  []int
	aux  []int // second value per cell, pair pools only
	head []int
	free int
	used int
}

func newPool(name string, lists, capacity int) *pool {
	p := &pool{
		name: name,
		next: make([]int, capacity),
		val:  make([]int, capacity),
		head: make([]int, lists),
	}
	p.reset()

	return p
}

// newPairPool is newPool with a second value per cell.
func newPairPool(name string, lists, capacity int) *pool {
	p := newPool(name, lists, capacity)
	p.aux = make([]int, capacity)

	return p
}

// reset empties every list in O(lists).
func (p *pool) reset() {
	for i := range p.head {
		p.head[i] = none
	}
	p.free = none
	p.used = 0
}

func (p *pool) push(list, v int) {
	cell := p.free
	if cell != none {
		p.free = p.next[cell]
	} else {
		if p.used == len(p.val) {
			assertf("%s pool overflow (capacity %d)", p.name, len(p.val))
		}
		cell = p.used
		p.used++
	}
	p.val[cell] = v
	p.next[cell] = p.head[list]
	p.head[list] = cell
}

func (p *pool) pushPair(list, v, w int) {
	p.push(list, v)
	p.aux[p.head[list]] = w
}

// pop removes and returns the most recent value of list. The list must not
// be empty.
func (p *pool) pop(list int) int {
	cell := p.head[list]
	p.head[list] = p.next[cell]
	p.next[cell] = p.free
	p.free = cell

	return p.val[cell]
}

func (p *pool) empty(list int) bool { return p.head[list] == none }

// first returns the head cell of list for iteration with succ.
func (p *pool) first(list int) int { return p.head[list] }

func (p *pool) succ(cell int) int { return p.next[cell] }

func (p *pool) value(cell int) int { return p.val[cell] }

func (p *pool) second(cell int) int { return p.aux[cell] }
