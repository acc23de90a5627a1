package reader_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/reader"
)

const twoGraphs = `5
Aurora and 85th
Green Lake Starbucks
Woodland Park Zoo
Troll under bridge
PCC on Stone Way
1 2 50
1 3 20
1 5 30
2 4 10
3 2 10
3 4 50
4 5 70
0 0 0
3
aaa
bbb
ccc
1 2 10
2 3 5
0
`

func TestNext_TwoGraphs(t *testing.T) {
	rd := reader.New(strings.NewReader(twoGraphs))

	g1, err := rd.Next()
	require.NoError(t, err)
	require.Len(t, g1.Labels, 5)
	assert.Equal(t, "Aurora and 85th", g1.Labels[0])
	assert.Equal(t, "PCC on Stone Way", g1.Labels[4])
	require.Len(t, g1.Edges, 7)
	assert.Equal(t, reader.Edge{Src: 1, Dest: 2, Weight: 50}, g1.Edges[0])
	assert.Equal(t, reader.Edge{Src: 4, Dest: 5, Weight: 70}, g1.Edges[6])

	g2, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, g2.Labels)
	assert.Equal(t, []reader.Edge{{Src: 1, Dest: 2, Weight: 10}, {Src: 2, Dest: 3, Weight: 5}}, g2.Edges)

	_, err = rd.Next()
	require.ErrorIs(t, err, io.EOF)
	_, err = rd.Next()
	require.ErrorIs(t, err, io.EOF, "stays exhausted")
}

func TestReadAll(t *testing.T) {
	all, err := reader.ReadAll(strings.NewReader(twoGraphs))
	require.NoError(t, err)
	require.Len(t, all, 2)

	all, err = reader.ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNext_EndOfInputTerminatesEdges(t *testing.T) {
	in := "2\r\nleft\r\nright\r\n1 2 4\r\n2 1 6"
	all, err := reader.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"left", "right"}, all[0].Labels, "CRLF is stripped")
	assert.Len(t, all[0].Edges, 2, "the last line counts even without a newline")
}

func TestNext_LabelsKeepSpacesAndBlanks(t *testing.T) {
	in := "3\n  padded label  \n\nthird\n0\n"
	g, err := reader.New(strings.NewReader(in)).Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded label  ", "", "third"}, g.Labels)
	assert.Empty(t, g.Edges)
}

func TestNext_BlankLinesBetweenGraphs(t *testing.T) {
	in := "\n\n1\nsolo\n\n0\n\n\n1\nagain\n"
	all, err := reader.ReadAll(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{"solo"}, all[0].Labels)
	assert.Equal(t, []string{"again"}, all[1].Labels)
}

func TestNext_LenientMalformedEdgeStopsStream(t *testing.T) {
	in := "2\na\nb\n1 2 3\n2 x 1\n1 1 1\n0\n1\nnever\n"
	rd := reader.New(strings.NewReader(in))

	g, err := rd.Next()
	require.NoError(t, err)
	assert.Equal(t, []reader.Edge{{Src: 1, Dest: 2, Weight: 3}}, g.Edges)

	_, err = rd.Next()
	require.ErrorIs(t, err, io.EOF, "a failed read abandons the rest of the stream")
}

func TestNext_LenientMissingLabels(t *testing.T) {
	g, err := reader.New(strings.NewReader("3\nonly\n")).Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "", ""}, g.Labels)
}

func TestNext_LenientBadCount(t *testing.T) {
	_, err := reader.New(strings.NewReader("three\n")).Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestNext_StrictErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line int
	}{
		{"bad count", "x\n", 1},
		{"missing labels", "2\na\n", 2},
		{"bad source", "1\na\nq 1 1\n", 3},
		{"short edge", "2\na\nb\n1 2\n", 4},
		{"bad dest", "2\na\nb\n1 b 2\n", 4},
		{"bad weight", "2\na\nb\n1 2 2.5\n", 4},
		{"extra field", "2\na\nb\n1 2 3 4\n", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rd := reader.New(strings.NewReader(tc.in), reader.WithStrict())
			_, err := rd.Next()
			require.Error(t, err)
			require.True(t, errors.Is(err, reader.ErrMalformed), "got %v", err)
			assert.Equal(t, tc.line, rd.Line())

			_, err = rd.Next()
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestNext_VertexCountRange(t *testing.T) {
	for _, in := range []string{"0\n", "-4\n", "101\n"} {
		_, err := reader.New(strings.NewReader(in)).Next()
		require.ErrorIs(t, err, reader.ErrVertexCount, "input %q", in)
	}

	_, err := reader.New(strings.NewReader("3\na\nb\nc\n"), reader.WithMaxVertices(2)).Next()
	require.ErrorIs(t, err, reader.ErrVertexCount)

	require.Panics(t, func() { reader.WithMaxVertices(0) })
}

func TestNext_OutOfRangeIdsArePassedThrough(t *testing.T) {
	g, err := reader.New(strings.NewReader("1\na\n999 1 5\n0\n")).Next()
	require.NoError(t, err)
	assert.Equal(t, []reader.Edge{{Src: 999, Dest: 1, Weight: 5}}, g.Edges)
}
