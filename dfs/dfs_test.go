package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/dfs"
)

// diamond: 0→{1,2}, 1→{3}, 2→{3}, 3→{0} (cycle back to the root).
var diamond = map[int][]int{0: {1, 2}, 1: {3}, 2: {3}, 3: {0}}

func succ(s int) []int { return diamond[s] }

// TestSearch_PreOrder verifies order, single visits and cycle handling.
func TestSearch_PreOrder(t *testing.T) {
	res, err := dfs.Search(0, func(s int) ([]int, bool) { return succ(s), false })
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.False(t, res.Stopped)
	require.Len(t, res.Visited, 4)
}

// TestSearch_Stop ends the traversal at the first matching state.
func TestSearch_Stop(t *testing.T) {
	res, err := dfs.Search(0, func(s int) ([]int, bool) { return succ(s), s == 3 })
	require.NoError(t, err)
	require.True(t, res.Stopped)
	require.Equal(t, 3, res.StoppedAt)
	require.False(t, res.Visited[2], "2 is never reached once 3 stops the search")
}

// TestSearch_Options covers depth limits, hooks and cancellation.
func TestSearch_Options(t *testing.T) {
	res, err := dfs.Search(0, func(s int) ([]int, bool) { return succ(s), false }, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)

	boom := errors.New("boom")
	_, err = dfs.Search(0, func(s int) ([]int, bool) { return succ(s), false },
		dfs.WithOnVisit(func(depth int) error {
			if depth == 2 {
				return boom
			}
			return nil
		}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Search(0, func(s int) ([]int, bool) { return succ(s), false }, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = dfs.Search[int](0, nil)
	require.ErrorIs(t, err, dfs.ErrNilVisitor)
}

// TestReachable lists reachable states.
func TestReachable(t *testing.T) {
	require.ElementsMatch(t, []int{0, 1, 2, 3}, dfs.Reachable(0, succ))
	require.Equal(t, []int{7}, dfs.Reachable(7, succ))
}
