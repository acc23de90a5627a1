package apsp

import "slices"

// Table is the size×size all-pairs result of Compute.
//
// Cells live in one row-major slice; row src-1 holds the search from src.
// A Table is only meaningful for the graph state it was computed from.
type Table struct {
	size  int
	cells []Entry
}

// newTable allocates an n×n table with every cell unreachable.
func newTable(n int) *Table {
	t := &Table{size: n, cells: make([]Entry, n*n)}
	for i := range t.cells {
		t.cells[i] = Entry{Dist: Infinity, Prev: NoVertex}
	}

	return t
}

// Size returns the number of vertices the table covers.
func (t *Table) Size() int { return t.size }

func (t *Table) inRange(id int) bool { return id >= 1 && id <= t.size }

// row returns the live slice of entries for source src (1-based).
func (t *Table) row(src int) []Entry {
	base := (src - 1) * t.size
	return t.cells[base : base+t.size]
}

// Entry returns the cell for (src, dest) and false when either id is out
// of range.
func (t *Table) Entry(src, dest int) (Entry, bool) {
	if !t.inRange(src) || !t.inRange(dest) {
		return Entry{}, false
	}

	return t.cells[(src-1)*t.size+dest-1], true
}

// Distance returns the shortest distance from src to dest. The boolean is
// false only when an id is out of range; an unreachable destination
// reports Infinity with true.
func (t *Table) Distance(src, dest int) (int64, bool) {
	e, ok := t.Entry(src, dest)
	if !ok {
		return 0, false
	}

	return e.Dist, true
}

// Row returns a copy of the entries computed from src, indexed by dest-1.
func (t *Table) Row(src int) []Entry {
	if !t.inRange(src) {
		return nil
	}

	return slices.Clone(t.row(src))
}

// Path returns the vertex ids on the shortest path from src to dest, in
// travel order. It is [src] when src == dest and nil when dest is
// unreachable or an id is out of range.
//
// Predecessor links are followed backwards into a reversed slice; the walk
// is bounded by the vertex count, so a corrupted chain yields nil instead
// of looping.
func (t *Table) Path(src, dest int) []int {
	if !t.inRange(src) || !t.inRange(dest) {
		return nil
	}
	if src == dest {
		return []int{src}
	}
	row := t.row(src)
	if row[dest-1].Dist == Infinity {
		return nil
	}

	rev := make([]int, 0, 8)
	v := dest
	for steps := 0; ; steps++ {
		rev = append(rev, v)
		if v == src {
			break
		}
		if steps >= t.size {
			return nil
		}
		v = row[v-1].Prev
		if !t.inRange(v) {
			return nil
		}
	}
	slices.Reverse(rev)

	return rev
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}

	return &Table{size: t.size, cells: slices.Clone(t.cells)}
}

// Equal reports whether two tables hold the same distances and
// predecessors. Settled flags are search bookkeeping and are not compared.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.size != o.size {
		return false
	}
	for i := range t.cells {
		if t.cells[i].Dist != o.cells[i].Dist || t.cells[i].Prev != o.cells[i].Prev {
			return false
		}
	}

	return true
}
