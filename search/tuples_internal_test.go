package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTuples_Order(t *testing.T) {
	require.Equal(t, [][]int{{1, 3}, {2, 3}}, tuples(2, 3))
	require.Equal(t, [][]int{{1, 2, 4}, {1, 3, 4}, {2, 3, 4}}, tuples(3, 4))
	require.Equal(t, [][]int{{1, 5}, {2, 5}, {3, 5}, {4, 5}}, tuples(2, 5))
	require.Equal(t, [][]int{{4}}, tuples(1, 4))
	require.Nil(t, tuples(3, 2))
}

func TestTuples_SumBeforeLex(t *testing.T) {
	// {1,4,5} (sum 10) precedes {2,3,5} (sum 10) lexicographically, and both
	// follow {1,3,5} (sum 9).
	ts := tuples(3, 5)
	require.Equal(t, []int{1, 2, 5}, ts[0])
	require.Equal(t, []int{1, 3, 5}, ts[1])
	require.Equal(t, []int{1, 4, 5}, ts[2])
	require.Equal(t, []int{2, 3, 5}, ts[3])
}

func TestDominatesAny(t *testing.T) {
	seen := [][]int{{2, 3}}
	require.True(t, dominatesAny([]int{2, 3}, seen))
	require.True(t, dominatesAny([]int{2, 5}, seen))
	require.False(t, dominatesAny([]int{1, 5}, seen))
	require.False(t, dominatesAny([]int{1, 4}, nil))
}
