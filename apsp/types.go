package apsp

import (
	"errors"
	"iter"
	"math"
)

// Sentinel errors returned by the apsp package.
var (
	// ErrNilSource indicates that Compute was called with a nil Source.
	ErrNilSource = errors.New("apsp: source graph is nil")

	// ErrNegativeWeight indicates a negative edge weight was detected.
	ErrNegativeWeight = errors.New("apsp: negative edge weight encountered")

	// ErrBadWorkers indicates WithWorkers was given a value below one.
	ErrBadWorkers = errors.New("apsp: workers must be at least 1")

	// ErrBadSelection indicates an unknown vertex-selection strategy.
	ErrBadSelection = errors.New("apsp: unknown selection strategy")
)

const (
	// Infinity is the distance of an unreachable destination.
	Infinity int64 = math.MaxInt64

	// NoVertex is the predecessor of a source in its own row and of every
	// destination that was never reached.
	NoVertex = 0
)

// Source is the read-only adjacency view consumed by Compute.
//
// Vertex ids are 1-based: 1..Size(). Edges(v) yields (dest, weight) pairs
// leaving v; it must be safe to call concurrently when WithWorkers(n > 1)
// is used.
type Source interface {
	Size() int
	Edges(src int) iter.Seq2[int, int64]
}

// Entry is one cell of the shortest-path table for a (src, dest) pair.
type Entry struct {
	// Dist is the shortest known distance from src, or Infinity.
	Dist int64

	// Prev is the vertex preceding dest on the shortest path, or NoVertex.
	Prev int

	// Settled is true once the search from src finalised this entry.
	Settled bool
}

// Reachable reports whether the entry holds a real distance.
func (e Entry) Reachable() bool { return e.Dist != Infinity }

// Selection picks the vertex-selection strategy used by each search.
type Selection int

const (
	// SelectionScan selects with a linear ascending-id scan (ties → highest id).
	SelectionScan Selection = iota

	// SelectionHeap selects with a binary heap; same routes as SelectionScan.
	SelectionHeap
)

// String returns the strategy name used in configuration files and logs.
func (s Selection) String() string {
	switch s {
	case SelectionScan:
		return "scan"
	case SelectionHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseSelection maps "scan" / "heap" to a Selection.
func ParseSelection(name string) (Selection, error) {
	switch name {
	case "scan", "":
		return SelectionScan, nil
	case "heap":
		return SelectionHeap, nil
	default:
		return SelectionScan, ErrBadSelection
	}
}

// Options configures Compute.
//
// Selection           – vertex-selection strategy (default SelectionScan).
// Workers             – number of sources searched concurrently (default 1).
// CheckNegativeWeight – pre-scan edges and fail on negative weights.
type Options struct {
	Selection           Selection
	Workers             int
	CheckNegativeWeight bool
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithSelection sets the vertex-selection strategy.
// Panics with ErrBadSelection on an unknown value.
func WithSelection(s Selection) Option {
	if s != SelectionScan && s != SelectionHeap {
		panic(ErrBadSelection.Error())
	}

	return func(o *Options) { o.Selection = s }
}

// WithWorkers sets how many per-source searches may run at once.
// Panics with ErrBadWorkers when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithNegativeWeightCheck makes Compute reject graphs with negative edges.
func WithNegativeWeightCheck() Option {
	return func(o *Options) { o.CheckNegativeWeight = true }
}

// DefaultOptions returns the defaults: scan selection, one worker, no
// negative-weight check.
func DefaultOptions() Options {
	return Options{
		Selection:           SelectionScan,
		Workers:             1,
		CheckNegativeWeight: false,
	}
}
