// Package apsp computes all-pairs shortest paths on a small directed graph
// by running Dijkstra's algorithm once from every vertex.
//
// Overview:
//
//   - Compute reads any Source (an adjacency view with 1-based vertex ids,
//     satisfied by *adjacency.Store) and fills a size×size Table of
//     (distance, predecessor, settled) entries.
//   - The table is rebuilt wholesale on every call; nothing is maintained
//     incrementally. After the graph changes, call Compute again.
//   - Table.Path rebuilds a route by walking predecessor links backwards
//     from the destination, bounded by the vertex count.
//
// Vertex selection:
//
//   - SelectionScan (default): O(V²) per source. Each step scans vertices in
//     ascending id order and keeps the last unsettled vertex whose distance
//     is <= the running minimum, so among equal distances the highest id
//     wins. Unreachable vertices are still settled (at Infinity) but never
//     relax their edges.
//   - SelectionHeap: O((V + E) log V) per source using a lazy-decrease-key
//     min-heap keyed by (distance asc, id desc). It reports exactly the same
//     distances and predecessors as the scan; only the Settled flag of
//     unreachable entries differs, because the heap never visits them.
//
// Sentinels:
//
//   - Infinity (math.MaxInt64) marks an unreachable destination.
//   - NoVertex (0) marks "no predecessor": the source itself, or a
//     destination no search ever reached.
//
// Errors:
//
//   - ErrNilSource      Compute was given a nil Source.
//   - ErrNegativeWeight a negative edge was found; only reported when
//     WithNegativeWeightCheck() is set. Negative weights are outside the
//     supported domain and are not validated otherwise.
//   - ErrBadWorkers     WithWorkers(n) with n < 1 (panics in the option).
//   - ErrBadSelection   WithSelection with an unknown strategy (panics).
//
// Concurrency:
//
//	Compute is synchronous. WithWorkers(n > 1) fans the independent
//	per-source searches out over an errgroup and waits for all of them; the
//	resulting table is identical to a sequential run. The Source must not be
//	mutated while Compute runs.
//
// FloydWarshall is a dense distance-only closure over the same Source, kept
// as an independent cross-check for the Dijkstra table.
package apsp
