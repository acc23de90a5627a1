package graph

import (
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/apsp/adjacency"
	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/label"
	"github.com/katalvlaran/apsp/reader"
)

// Graph is a labeled directed graph plus its shortest-path table.
type Graph struct {
	opts   Options
	log    zerolog.Logger
	labels []label.Value    // labels[i] belongs to vertex i+1
	store  *adjacency.Store // outgoing edges
	table  *apsp.Table      // nil until the first Recompute
	dirty  bool             // mutated since the table was computed
}

// New returns an empty graph with zero vertices.
func New(opts ...Option) *Graph {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		opts:  cfg,
		log:   cfg.Logger.With().Str("component", "graph").Logger(),
		store: adjacency.New(0),
	}
}

// Build replaces the whole graph: one vertex per label (ids in label
// order), then every edge inserted in order with the usual no-op policy.
// Any previous table is discarded.
func (g *Graph) Build(labels []string, edges []Edge) error {
	if len(labels) > MaxVertices {
		return fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(labels), MaxVertices)
	}

	g.labels = make([]label.Value, len(labels))
	for i, s := range labels {
		g.labels[i] = label.New(s)
	}
	g.store = adjacency.New(len(labels))
	for _, e := range edges {
		g.store.Insert(e.Src, e.Dest, e.Weight)
	}
	g.table = nil
	g.dirty = false

	g.log.Debug().
		Int("vertices", len(labels)).
		Int("edges_in", len(edges)).
		Int("edges_kept", g.store.EdgeCount()).
		Msg("graph built")

	return nil
}

// BuildFrom builds the graph from a parsed reader.Input.
func (g *Graph) BuildFrom(in *reader.Input) error {
	if in == nil {
		return ErrNilInput
	}
	edges := make([]Edge, len(in.Edges))
	for i, e := range in.Edges {
		edges[i] = Edge{Src: e.Src, Dest: e.Dest, Weight: e.Weight}
	}

	return g.Build(in.Labels, edges)
}

// Size returns the vertex count.
func (g *Graph) Size() int { return len(g.labels) }

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int { return g.store.EdgeCount() }

func (g *Graph) inRange(id int) bool { return id >= 1 && id <= len(g.labels) }

// Label returns the label of vertex id.
func (g *Graph) Label(id int) (label.Value, bool) {
	if !g.inRange(id) {
		return label.Value{}, false
	}

	return g.labels[id-1], true
}

// Labels returns a copy of all labels in id order.
func (g *Graph) Labels() []label.Value { return slices.Clone(g.labels) }

// Weight returns the weight of src→dest and whether the edge exists.
func (g *Graph) Weight(src, dest int) (int64, bool) { return g.store.Weight(src, dest) }

// Out returns a copy of the edges leaving src.
func (g *Graph) Out(src int) []adjacency.Edge { return g.store.Out(src) }

// InsertEdge adds src→dest or overwrites its weight. Out-of-range ids are
// ignored. The table is not refreshed; call Recompute.
func (g *Graph) InsertEdge(src, dest int, weight int64) {
	if !g.inRange(src) || !g.inRange(dest) {
		g.log.Trace().Int("src", src).Int("dest", dest).Msg("insert ignored: vertex out of range")
		return
	}
	g.store.Insert(src, dest, weight)
	g.dirty = true
}

// RemoveEdge deletes every src→dest edge. An out-of-range src is
// ignored. The table is not refreshed; call Recompute.
func (g *Graph) RemoveEdge(src, dest int) {
	if !g.inRange(src) {
		g.log.Trace().Int("src", src).Int("dest", dest).Msg("remove ignored: vertex out of range")
		return
	}
	g.store.Remove(src, dest)
	g.dirty = true
}

// Recompute rebuilds the whole shortest-path table from the current edges.
func (g *Graph) Recompute() error {
	start := time.Now()
	tbl, err := apsp.Compute(g.store, g.opts.Compute...)
	if err != nil {
		return fmt.Errorf("graph: recompute: %w", err)
	}
	g.table = tbl
	g.dirty = false

	if e := g.log.Debug(); e.Enabled() {
		cfg := apsp.DefaultOptions()
		for _, opt := range g.opts.Compute {
			opt(&cfg)
		}
		e.Int("vertices", g.Size()).
			Int("edges", g.store.EdgeCount()).
			Stringer("selection", cfg.Selection).
			Int("workers", cfg.Workers).
			Dur("elapsed", time.Since(start)).
			Msg("shortest paths recomputed")
	}

	return nil
}

// Stale reports whether the table is missing or predates a mutation.
func (g *Graph) Stale() bool { return g.table == nil || g.dirty }

// Table returns the current table (nil before the first Recompute).
// The table is shared; treat it as read-only or Clone it.
func (g *Graph) Table() *apsp.Table { return g.table }

// Distance returns the shortest distance from src to dest, apsp.Infinity
// when unreachable. ok is false for out-of-range ids or before the first
// Recompute.
func (g *Graph) Distance(src, dest int) (d int64, ok bool) {
	if g.table == nil {
		return 0, false
	}

	return g.table.Distance(src, dest)
}

// Path returns the vertex ids of the shortest path from src to dest, [src]
// when they are equal and nil when unreachable, out of range or not
// computed.
func (g *Graph) Path(src, dest int) []int {
	if g.table == nil {
		return nil
	}

	return g.table.Path(src, dest)
}

// Verify cross-checks the table against a Floyd–Warshall closure of the
// current edges.
func (g *Graph) Verify() error {
	if g.table == nil {
		return ErrNotComputed
	}
	if ok, a, b := g.table.MatchesFloydWarshall(g.store); !ok {
		return fmt.Errorf("%w: first difference at %d→%d", ErrMismatch, a, b)
	}

	return nil
}

// Clone returns a deep copy: labels, edges and table share nothing with g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		opts:   g.opts,
		log:    g.log,
		labels: make([]label.Value, len(g.labels)),
		store:  g.store.Clone(),
		table:  g.table.Clone(),
		dirty:  g.dirty,
	}
	c.opts.Compute = slices.Clone(g.opts.Compute)
	for i, l := range g.labels {
		c.labels[i] = l.Clone()
	}

	return c
}

// Clear releases every label, edge and the table. The graph is left with
// zero vertices and can be rebuilt with Build.
func (g *Graph) Clear() {
	g.store.Clear()
	g.store = adjacency.New(0)
	g.labels = nil
	g.table = nil
	g.dirty = false
}
