// Package reader parses the plain-text graph description consumed by the
// apsp tools.
//
// Format (one or more graphs back-to-back):
//
//	<N>                    vertex count, 1..MaxVertices
//	<label 1>              N lines, one free-text label per vertex;
//	...                    the id of a vertex is its line order
//	<label N>
//	<src> <dest> <weight>  edge lines
//	...
//	0                      a line whose first integer is 0 ends the edge
//	                       list ("0 0 0" works too); so does end of input
//
// Blank lines are skipped everywhere except inside the label block, where
// an empty line is an empty label.
//
// Malformed input:
//
//	Lenient (default): a malformed edge line, or a missing label, ends the
//	current graph and the whole stream, the way a failed stream read would.
//	The graph read so far is still returned; the next call reports io.EOF.
//
//	Strict (WithStrict): the same conditions return ErrMalformed wrapped
//	with the line number.
//
// A vertex count outside [1, MaxVertices] is always ErrVertexCount.
package reader
