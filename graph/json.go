package graph

import (
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/label"
)

// Snapshot is the JSON form of a graph and its table.
type Snapshot struct {
	Stale    bool             `json:"stale"`
	Vertices []VertexSnapshot `json:"vertices"`
}

// VertexSnapshot describes one vertex, its edges and its routes.
type VertexSnapshot struct {
	ID     int            `json:"id"`
	Label  label.Value    `json:"label"`
	Edges  []EdgeSnapshot `json:"edges"`
	Routes []Route        `json:"routes"`
}

// EdgeSnapshot is one outgoing edge.
type EdgeSnapshot struct {
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// Route is the shortest path to one other vertex. Distance is null and
// Path empty when the destination is unreachable.
type Route struct {
	To       int    `json:"to"`
	Distance *int64 `json:"distance"`
	Path     []int  `json:"path,omitempty"`
}

// Snapshot returns the graph as plain data. Self routes are omitted, as in
// RenderAll.
func (g *Graph) Snapshot() Snapshot {
	n := g.Size()
	s := Snapshot{Stale: g.Stale(), Vertices: make([]VertexSnapshot, 0, n)}
	for src := 1; src <= n; src++ {
		vs := VertexSnapshot{
			ID:     src,
			Label:  g.labels[src-1],
			Edges:  make([]EdgeSnapshot, 0, g.store.Degree(src)),
			Routes: make([]Route, 0, n-1),
		}
		for to, w := range g.store.Edges(src) {
			vs.Edges = append(vs.Edges, EdgeSnapshot{To: to, Weight: w})
		}
		for dest := 1; dest <= n; dest++ {
			if dest == src {
				continue
			}
			r := Route{To: dest}
			if d, ok := g.Distance(src, dest); ok && d != apsp.Infinity {
				r.Distance = &d
				r.Path = g.Path(src, dest)
			}
			vs.Routes = append(vs.Routes, r)
		}
		s.Vertices = append(s.Vertices, vs)
	}

	return s
}

// WriteJSON writes Snapshot as indented JSON.
func (g *Graph) WriteJSON(w io.Writer) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(g.Snapshot())
}
