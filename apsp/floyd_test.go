package apsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/adjacency"
	"github.com/katalvlaran/apsp/apsp"
)

func TestFloydWarshall_ABC(t *testing.T) {
	d := apsp.FloydWarshall(abcStore())
	require.Len(t, d, 3)
	assert.Equal(t, []int64{0, 5, 8}, d[0])
	assert.Equal(t, []int64{apsp.Infinity, 0, 3}, d[1])
	assert.Equal(t, []int64{apsp.Infinity, apsp.Infinity, 0}, d[2])
}

func TestFloydWarshall_IgnoresSelfLoops(t *testing.T) {
	s := adjacency.New(2)
	s.Insert(1, 1, 7)
	s.Insert(1, 2, 2)
	d := apsp.FloydWarshall(s)
	assert.Equal(t, int64(0), d[0][0])
	assert.Equal(t, int64(2), d[0][1])
}

func TestFloydWarshall_NilSource(t *testing.T) {
	assert.Nil(t, apsp.FloydWarshall(nil))
}

func TestTable_MatchesFloydWarshall(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		s := randomStore(seed, 35, 0.12, 60)
		for _, st := range strategies {
			tbl, err := apsp.Compute(s, apsp.WithSelection(st.sel))
			require.NoError(t, err)
			ok, a, b := tbl.MatchesFloydWarshall(s)
			require.True(t, ok, "seed %d %s: first mismatch at (%d,%d)", seed, st.name, a, b)
		}
	}
}

func TestTable_MatchesFloydWarshall_DetectsStaleTable(t *testing.T) {
	s := abcStore()
	tbl, err := apsp.Compute(s)
	require.NoError(t, err)

	s.Remove(2, 3)
	ok, a, b := tbl.MatchesFloydWarshall(s)
	require.False(t, ok)
	assert.Equal(t, 1, a)
	assert.Equal(t, 3, b)

	ok, _, _ = tbl.MatchesFloydWarshall(adjacency.New(5))
	assert.False(t, ok, "size mismatch")
}
