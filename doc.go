// Package apsp is the root of a small toolkit for all-pairs shortest paths
// over labeled directed graphs with non-negative integer weights.
//
// What is in the module?
//
//	A graph of at most 100 vertices, one Dijkstra run per source, and a
//	table answering "how far" and "which way" for every ordered pair:
//		• label/      immutable vertex labels (text, JSON, YAML)
//		• adjacency/  sorted per-source edge lists with overwrite semantics
//		• apsp/       the shortest-path engine: scan or heap selection,
//		              optional parallel sources, Floyd–Warshall cross-check
//		• reader/     parser for the line-oriented multi-graph input
//		• graph/      facade: build, mutate, recompute, query, render
//		• cmd/apsp    the command line: table, path, edit
//
// Quick ASCII example:
//
//	    1 ──5──▶ 2 ──3──▶ 3
//	    └──────10───────▶┘
//
// The shortest route 1→3 costs 8 and goes through 2. Removing 2→3 and
// recomputing yields 10 along the direct edge.
//
// Mutations never refresh the table on their own; call graph.Graph.Recompute.
//
//	go install github.com/katalvlaran/apsp/cmd/apsp@latest
package apsp
