package adjacency

import (
	"iter"
	"slices"
	"sort"
)

// New returns an empty Store for vertices 1..size.
// A negative size is treated as zero.
func New(size int) *Store {
	if size < 0 {
		size = 0
	}

	return &Store{out: make([][]Edge, size)}
}

// Size returns the number of vertices the store was created for.
func (s *Store) Size() int { return len(s.out) }

// EdgeCount returns the number of stored edges.
func (s *Store) EdgeCount() int { return s.edges }

// inRange reports whether id is a valid 1-based vertex id.
func (s *Store) inRange(id int) bool {
	return id >= 1 && id <= len(s.out)
}

// Insert adds the edge src→dest with the given weight, or overwrites the
// weight if that edge already exists. Out-of-range ids make it a no-op.
func (s *Store) Insert(src, dest int, weight int64) {
	if !s.inRange(src) || !s.inRange(dest) {
		return
	}
	list := s.out[src-1]

	// First position whose destination is >= dest.
	i := sort.Search(len(list), func(k int) bool { return list[k].To >= dest })
	if i < len(list) && list[i].To == dest {
		list[i].Weight = weight

		return
	}

	s.out[src-1] = slices.Insert(list, i, Edge{To: dest, Weight: weight})
	s.edges++
}

// Remove deletes every edge src→dest. It is a no-op when src is out of
// range or no such edge exists.
func (s *Store) Remove(src, dest int) {
	if !s.inRange(src) {
		return
	}
	list := s.out[src-1]
	before := len(list)
	list = slices.DeleteFunc(list, func(e Edge) bool { return e.To == dest })
	s.edges -= before - len(list)
	s.out[src-1] = list
}

// Weight returns the weight of src→dest and whether that edge exists.
func (s *Store) Weight(src, dest int) (int64, bool) {
	if !s.inRange(src) {
		return 0, false
	}
	list := s.out[src-1]
	i := sort.Search(len(list), func(k int) bool { return list[k].To >= dest })
	if i < len(list) && list[i].To == dest {
		return list[i].Weight, true
	}

	return 0, false
}

// Degree returns the out-degree of src, or 0 when src is out of range.
func (s *Store) Degree(src int) int {
	if !s.inRange(src) {
		return 0
	}

	return len(s.out[src-1])
}

// Edges returns the (dest, weight) pairs leaving src in ascending dest
// order. The sequence is read-only and can be ranged over any number of
// times; it yields nothing when src is out of range.
//
// Mutating the store while ranging over the sequence is not supported.
func (s *Store) Edges(src int) iter.Seq2[int, int64] {
	return func(yield func(int, int64) bool) {
		if !s.inRange(src) {
			return
		}
		for _, e := range s.out[src-1] {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// Out returns a copy of the edges leaving src, ascending by destination.
func (s *Store) Out(src int) []Edge {
	if !s.inRange(src) {
		return nil
	}

	return slices.Clone(s.out[src-1])
}

// Clone returns a deep copy: no edge slice is shared with s.
func (s *Store) Clone() *Store {
	c := &Store{out: make([][]Edge, len(s.out)), edges: s.edges}
	for i, list := range s.out {
		if len(list) > 0 {
			c.out[i] = slices.Clone(list)
		}
	}

	return c
}

// Clear drops every edge while keeping the vertex count.
func (s *Store) Clear() {
	for i := range s.out {
		s.out[i] = nil
	}
	s.edges = 0
}
