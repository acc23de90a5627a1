package reader

import "errors"

// MaxVertices is the largest vertex count the format allows.
const MaxVertices = 100

// Sentinel errors.
var (
	// ErrMalformed indicates a line that does not follow the format.
	ErrMalformed = errors.New("reader: malformed input")

	// ErrVertexCount indicates a vertex count outside [1, max].
	ErrVertexCount = errors.New("reader: vertex count out of range")
)

// Edge is one parsed "src dest weight" line. Ids are not range-checked
// here; the graph applies its own no-op policy.
type Edge struct {
	Src    int   `json:"src" yaml:"src"`
	Dest   int   `json:"dest" yaml:"dest"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Input is one parsed graph description.
type Input struct {
	// Labels holds one label per vertex; vertex i has Labels[i-1].
	Labels []string

	// Edges in input order.
	Edges []Edge
}

// Options configures a Reader.
type Options struct {
	Strict      bool
	MaxVertices int
}

// Option is a functional option for New.
type Option func(*Options)

// WithStrict turns malformed input into ErrMalformed errors.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithMaxVertices overrides MaxVertices. Panics when n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("reader: WithMaxVertices(n < 1)")
	}

	return func(o *Options) { o.MaxVertices = n }
}

// DefaultOptions returns lenient parsing with the MaxVertices limit.
func DefaultOptions() Options {
	return Options{Strict: false, MaxVertices: MaxVertices}
}
