package graph

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/reader"
)

// MaxVertices is the largest graph Build accepts.
const MaxVertices = reader.MaxVertices

// Sentinel errors.
var (
	// ErrTooManyVertices indicates Build was given more than MaxVertices labels.
	ErrTooManyVertices = errors.New("graph: too many vertices")

	// ErrNilInput indicates BuildFrom was given a nil input.
	ErrNilInput = errors.New("graph: input is nil")

	// ErrNotComputed indicates Verify ran before any Recompute.
	ErrNotComputed = errors.New("graph: shortest paths not computed")

	// ErrMismatch indicates the Dijkstra table disagrees with Floyd–Warshall.
	ErrMismatch = errors.New("graph: shortest-path table disagrees with Floyd–Warshall")
)

// Edge is a directed edge given to Build.
type Edge struct {
	Src    int
	Dest   int
	Weight int64
}

// Options configures a Graph.
type Options struct {
	// Logger receives debug events; defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Compute is passed to apsp.Compute on every Recompute.
	Compute []apsp.Option
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger used for build and recompute events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithComputeOptions appends options forwarded to apsp.Compute.
func WithComputeOptions(opts ...apsp.Option) Option {
	return func(o *Options) { o.Compute = append(o.Compute, opts...) }
}

// DefaultOptions returns a silent logger and default compute options.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
