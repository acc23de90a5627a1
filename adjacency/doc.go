// Package adjacency stores the outgoing edges of a fixed set of vertices.
//
// A Store is created for exactly `size` vertices, identified by the 1-based
// ids 1..size. Each vertex owns an ordered slice of Edge records:
//
//   - at most one edge per ordered (src, dest) pair; inserting an existing
//     pair overwrites its weight,
//   - edges are kept sorted by ascending destination id, so traversal is
//     deterministic and shortest-path searches break ties the same way on
//     every run.
//
// Permissive policy:
//
//	Insert and Remove with a source id outside [1, size] are silent no-ops.
//	Insert also ignores destinations outside [1, size]: the distance table
//	built from a Store is sized exactly to the vertex count, so such an edge
//	could never be represented.
//
// Complexity:
//
//	Insert  – O(log d + d) (binary search, then slice shift), d = out-degree
//	Remove  – O(d)
//	Edges   – O(d) to drain, zero allocations
//	Clone   – O(V + E)
//
// A Store is not safe for concurrent mutation; callers serialise access.
package adjacency
