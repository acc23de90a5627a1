// Package graph ties the pieces together: it owns the vertex labels, the
// adjacency store and the all-pairs shortest-path table of one graph, and
// renders results as text or JSON.
//
// Lifecycle:
//
//	g := graph.New(graph.WithLogger(log))
//	_ = g.Build(labels, edges)     // size fixed here, table discarded
//	g.InsertEdge(1, 3, 7)          // mutations mark the table stale
//	_ = g.Recompute()              // caller MUST recompute after mutating
//	_ = g.RenderAll(os.Stdout)
//
// The table is never refreshed automatically. Stale reports whether it
// predates the last mutation; queries on a stale table answer for the old
// graph.
//
// Permissive ids:
//
//	InsertEdge, RemoveEdge, Distance, Path, RenderOne and Label ignore ids
//	outside [1, Size()] instead of returning errors.
//
// Text layout (RenderAll):
//
//	Description			From	To	Distance   Path
//	<label of 1>
//					1	2	8	   1  3  2
//					1	3	--
//	...
//
// The self pair of every source is omitted; unreachable pairs print "--".
//
// A Graph owns all of its state exclusively; Clone returns a fully
// independent deep copy. It is not safe for concurrent use.
package graph
