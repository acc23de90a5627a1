package graph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/graph"
	"github.com/katalvlaran/apsp/reader"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

// SetupTest builds {1:A, 2:B, 3:C} with 1→2(5), 2→3(3), 1→3(10).
func (s *GraphSuite) SetupTest() {
	s.g = graph.New()
	s.Require().NoError(s.g.Build(
		[]string{"A", "B", "C"},
		[]graph.Edge{{Src: 1, Dest: 2, Weight: 5}, {Src: 2, Dest: 3, Weight: 3}, {Src: 1, Dest: 3, Weight: 10}},
	))
	s.Require().NoError(s.g.Recompute())
}

func (s *GraphSuite) TestScenarioViaB() {
	require := require.New(s.T())
	d, ok := s.g.Distance(1, 3)
	require.True(ok)
	require.Equal(int64(8), d)
	require.Equal([]int{1, 2, 3}, s.g.Path(1, 3))
}

func (s *GraphSuite) TestRemoveThenRecompute() {
	require := require.New(s.T())
	s.g.RemoveEdge(2, 3)
	require.True(s.g.Stale())

	// Until recomputed, the old answer stands.
	d, _ := s.g.Distance(1, 3)
	require.Equal(int64(8), d)

	require.NoError(s.g.Recompute())
	require.False(s.g.Stale())
	d, _ = s.g.Distance(1, 3)
	require.Equal(int64(10), d)
	require.Equal([]int{1, 3}, s.g.Path(1, 3))
}

func (s *GraphSuite) TestIsolatedFourthVertex() {
	require := require.New(s.T())
	require.NoError(s.g.Build(
		[]string{"A", "B", "C", "D"},
		[]graph.Edge{{Src: 1, Dest: 2, Weight: 5}, {Src: 2, Dest: 3, Weight: 3}, {Src: 1, Dest: 3, Weight: 10}},
	))
	require.NoError(s.g.Recompute())

	d, ok := s.g.Distance(1, 4)
	require.True(ok)
	require.Equal(apsp.Infinity, d)
	d, _ = s.g.Distance(4, 1)
	require.Equal(apsp.Infinity, d)
	require.Nil(s.g.Path(4, 1))
}

func (s *GraphSuite) TestSelfRoutes() {
	require := require.New(s.T())
	for v := 1; v <= s.g.Size(); v++ {
		d, ok := s.g.Distance(v, v)
		require.True(ok)
		require.Zero(d)
		require.Equal([]int{v}, s.g.Path(v, v))
	}
}

func (s *GraphSuite) TestOutOfRangeInsertLeavesGraphUnchanged() {
	require := require.New(s.T())
	before := s.g.Snapshot()
	edges := s.g.EdgeCount()

	s.g.InsertEdge(999, 1, 5)
	s.g.InsertEdge(1, 999, 5)
	s.g.InsertEdge(0, 1, 5)
	s.g.RemoveEdge(-1, 2)

	require.Equal(edges, s.g.EdgeCount())
	require.False(s.g.Stale(), "ignored calls do not invalidate the table")
	require.Equal(before, s.g.Snapshot())
}

func (s *GraphSuite) TestOverwriteSemantics() {
	require := require.New(s.T())
	s.g.InsertEdge(3, 1, 4)
	s.g.InsertEdge(3, 1, 2)

	w, ok := s.g.Weight(3, 1)
	require.True(ok)
	require.Equal(int64(2), w)
	require.Len(s.g.Out(3), 1)
}

func (s *GraphSuite) TestInsertThenRemoveRestores() {
	require := require.New(s.T())
	before := s.g.Table().Clone()

	s.g.InsertEdge(3, 1, 1)
	require.NoError(s.g.Recompute())
	d, _ := s.g.Distance(2, 1)
	require.Equal(int64(4), d, "2→3→1 now exists")

	s.g.RemoveEdge(3, 1)
	require.NoError(s.g.Recompute())
	require.True(before.Equal(s.g.Table()))
}

func (s *GraphSuite) TestRecomputeIdempotent() {
	require := require.New(s.T())
	first := s.g.Table().Clone()
	require.NoError(s.g.Recompute())
	require.True(first.Equal(s.g.Table()))
}

func (s *GraphSuite) TestOutOfRangeQueries() {
	require := require.New(s.T())
	_, ok := s.g.Distance(0, 1)
	require.False(ok)
	require.Nil(s.g.Path(1, 4))
	_, ok = s.g.Label(4)
	require.False(ok)
	l, ok := s.g.Label(2)
	require.True(ok)
	require.Equal("B", l.String())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	c := s.g.Clone()

	c.InsertEdge(3, 1, 1)
	c.RemoveEdge(1, 2)
	require.NoError(c.Recompute())

	// The original still has its edges and table.
	require.Equal(3, s.g.EdgeCount())
	require.False(s.g.Stale())
	d, _ := s.g.Distance(1, 3)
	require.Equal(int64(8), d)
	_, ok := s.g.Weight(3, 1)
	require.False(ok)

	d, _ = c.Distance(1, 3)
	require.Equal(int64(10), d)
	require.Equal(s.g.Labels(), c.Labels())
}

func (s *GraphSuite) TestClear() {
	require := require.New(s.T())
	s.g.Clear()
	require.Zero(s.g.Size())
	require.Zero(s.g.EdgeCount())
	require.True(s.g.Stale())
	_, ok := s.g.Distance(1, 1)
	require.False(ok)

	// Rebuilding after Clear works.
	require.NoError(s.g.Build([]string{"X"}, nil))
	require.NoError(s.g.Recompute())
	require.Equal([]int{1}, s.g.Path(1, 1))
}

func (s *GraphSuite) TestVerify() {
	require := require.New(s.T())
	require.NoError(s.g.Verify())

	s.g.RemoveEdge(2, 3)
	require.ErrorIs(s.g.Verify(), graph.ErrMismatch, "stale table disagrees")

	require.ErrorIs(graph.New().Verify(), graph.ErrNotComputed)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestBuild_TooManyVertices(t *testing.T) {
	labels := make([]string, graph.MaxVertices+1)
	err := graph.New().Build(labels, nil)
	require.ErrorIs(t, err, graph.ErrTooManyVertices)

	require.NoError(t, graph.New().Build(labels[:graph.MaxVertices], nil))
}

func TestBuildFrom(t *testing.T) {
	in := "5\nAurora and 85th\nGreen Lake Starbucks\nWoodland Park Zoo\nTroll under bridge\nPCC on Stone Way\n" +
		"1 2 50\n1 3 20\n1 5 30\n2 4 10\n3 2 10\n3 4 50\n4 5 70\n0 0 0\n"
	parsed, err := reader.New(strings.NewReader(in)).Next()
	require.NoError(t, err)

	g := graph.New()
	require.ErrorIs(t, g.BuildFrom(nil), graph.ErrNilInput)
	require.NoError(t, g.BuildFrom(parsed))
	require.NoError(t, g.Recompute())

	d, _ := g.Distance(1, 4)
	require.Equal(t, int64(40), d)
	require.Equal(t, []int{1, 3, 2, 4}, g.Path(1, 4))
	d, _ = g.Distance(5, 1)
	require.Equal(t, apsp.Infinity, d)
}

func TestRecompute_ComputeOptionsAndErrors(t *testing.T) {
	g := graph.New(graph.WithComputeOptions(apsp.WithNegativeWeightCheck()))
	require.NoError(t, g.Build([]string{"a", "b"}, []graph.Edge{{Src: 1, Dest: 2, Weight: -1}}))
	err := g.Recompute()
	require.ErrorIs(t, err, apsp.ErrNegativeWeight)
	require.True(t, g.Stale())

	h := graph.New(graph.WithComputeOptions(apsp.WithSelection(apsp.SelectionHeap), apsp.WithWorkers(2)))
	require.NoError(t, h.Build([]string{"a", "b", "c"}, []graph.Edge{{Src: 1, Dest: 2, Weight: 1}, {Src: 2, Dest: 3, Weight: 1}}))
	require.NoError(t, h.Recompute())
	require.Equal(t, []int{1, 2, 3}, h.Path(1, 3))
}

func TestRecompute_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := graph.New(graph.WithLogger(logger), graph.WithComputeOptions(apsp.WithSelection(apsp.SelectionHeap)))
	require.NoError(t, g.Build([]string{"a", "b"}, []graph.Edge{{Src: 1, Dest: 2, Weight: 1}}))
	require.NoError(t, g.Recompute())

	out := buf.String()
	require.Contains(t, out, `"message":"graph built"`)
	require.Contains(t, out, `"message":"shortest paths recomputed"`)
	require.Contains(t, out, `"selection":"heap"`)
	require.Contains(t, out, `"component":"graph"`)
}
