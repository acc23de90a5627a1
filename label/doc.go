// Package label provides Value, the display name carried by every vertex
// of a graph.
//
// A Value wraps a single string. It is fixed at construction: there is no
// setter, so a Value can be shared or copied freely and every copy is
// independent of the original.
//
// Formatting:
//
//	%s, %v  – the raw text, no surrounding spaces.
//	%q      – the text as a Go-quoted string.
//
// Values implement encoding.TextMarshaler / TextUnmarshaler so they can be
// emitted in JSON snapshots and read from YAML configuration unchanged.
package label
