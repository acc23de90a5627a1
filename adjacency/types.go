package adjacency

// Edge is one outgoing edge of a vertex.
type Edge struct {
	// To is the 1-based destination vertex id.
	To int

	// Weight is the edge cost. Weights are expected to be non-negative;
	// the store itself does not check.
	Weight int64
}

// Store holds one ordered edge slice per vertex.
type Store struct {
	// out[i] lists edges leaving vertex i+1, ascending by To.
	out [][]Edge

	// edges counts all stored edges.
	edges int
}
