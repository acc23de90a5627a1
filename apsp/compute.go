package apsp

import (
	"container/heap"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Compute runs Dijkstra from every vertex of src and returns the filled
// table.
//
// Preconditions and validation (in order):
//  1. src must be non-nil (ErrNilSource).
//  2. With WithNegativeWeightCheck(), no edge may be negative
//     (ErrNegativeWeight, wrapped with the offending edge).
//
// Edges whose destination lies outside [1, Size()] are ignored.
//
// Complexity:
//
//   - SelectionScan: Time O(V·(V² + E)), Space O(V²) for the table.
//   - SelectionHeap: Time O(V·(V + E) log V), Space O(V² + E).
func Compute(src Source, opts ...Option) (*Table, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the source.
	if src == nil {
		return nil, ErrNilSource
	}
	n := src.Size()
	if n < 0 {
		n = 0
	}

	// 3) Optional negative-weight pre-scan, O(E).
	if cfg.CheckNegativeWeight {
		for u := 1; u <= n; u++ {
			for v, w := range src.Edges(u) {
				if w < 0 {
					return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
				}
			}
		}
	}

	t := newTable(n)

	// 4) Each source owns one table row, so searches never share state.
	if cfg.Workers <= 1 || n < 2 {
		for s := 1; s <= n; s++ {
			newRunner(src, t, s).run(cfg.Selection)
		}

		return t, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for s := 1; s <= n; s++ {
		g.Go(func() error {
			newRunner(src, t, s).run(cfg.Selection)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// runner holds the state of one single-source search.
type runner struct {
	src    Source  // adjacency view; read-only here
	size   int     // vertex count
	source int     // 1-based id the search starts from
	row    []Entry // live table row for source
}

func newRunner(src Source, t *Table, source int) *runner {
	return &runner{src: src, size: t.size, source: source, row: t.row(source)}
}

// run resets the row and fills it with the chosen strategy.
func (r *runner) run(sel Selection) {
	for i := range r.row {
		r.row[i] = Entry{Dist: Infinity, Prev: NoVertex}
	}
	r.row[r.source-1].Dist = 0

	if sel == SelectionHeap {
		r.runHeap()
		return
	}
	r.runScan()
}

// runScan is the classic O(V²) selection loop, executed size-1 times.
func (r *runner) runScan() {
	var (
		i, minIdx int
		minDist   int64
	)
	for step := 1; step < r.size; step++ {
		// 1) Pick the unsettled vertex with minimal distance. "<=" lets a
		//    later vertex with the same distance replace the current pick.
		minIdx = -1
		minDist = Infinity
		for i = 0; i < r.size; i++ {
			if !r.row[i].Settled && r.row[i].Dist <= minDist {
				minDist = r.row[i].Dist
				minIdx = i
			}
		}
		if minIdx < 0 {
			return
		}

		// 2) Finalise it.
		r.row[minIdx].Settled = true

		// 3) Nothing reachable is left; remaining steps only settle
		//    Infinity vertices, which have nothing to relax.
		if minDist == Infinity {
			continue
		}
		r.relax(minIdx+1, minDist, nil)
	}
}

// runHeap selects with a lazy-decrease-key min-heap.
func (r *runner) runHeap() {
	pq := make(nodePQ, 0, r.size)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		e := &r.row[item.id-1]
		// Stale entry: the vertex was settled through a shorter key.
		if e.Settled || item.dist != e.Dist {
			continue
		}
		e.Settled = true
		r.relax(item.id, item.dist, &pq)
	}
}

// relax tries to improve every unsettled neighbour of u, whose final
// distance is d. When pq is non-nil each improvement is pushed onto it.
func (r *runner) relax(u int, d int64, pq *nodePQ) {
	var (
		nd int64
		e  *Entry
	)
	for v, w := range r.src.Edges(u) {
		if v < 1 || v > r.size {
			continue
		}
		e = &r.row[v-1]
		if e.Settled {
			continue
		}
		// Saturate instead of wrapping past Infinity.
		if w >= Infinity-d {
			continue
		}
		nd = d + w
		if nd >= e.Dist {
			continue
		}
		e.Dist = nd
		e.Prev = u
		if pq != nil {
			heap.Push(pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// nodeItem is a (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap ordered by dist ascending, then id descending, so
// it breaks ties the same way as the "<=" scan.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id > pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
