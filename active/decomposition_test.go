package active_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/active"
	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/search"
)

func TestFindDecomposition_ReconstructsReference(t *testing.T) {
	if testing.Short() {
		t.Skip("decomposition learning runs many SAT calls")
	}
	ctx := context.Background()
	acc := alphabet.Words("y", "yy", "gy", "bgy", "bbgy", "bggy")
	rej := alphabet.Words("", "r", "ry", "by", "yr", "gr", "rr", "rry", "rygy")

	st, err := search.FindDecomposedDFAs(acc, rej, 2, search.WithOrderByStutter(true))
	require.NoError(t, err)
	parts, err := st.Next(ctx)
	require.NoError(t, err)
	reference, err := dfa.Conjunction(parts...)
	require.NoError(t, err)

	decomps, err := active.FindDecomposition(ctx, reference, 2, 20, 10)
	require.NoError(t, err)
	got, err := decomps.Take(ctx, 3)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, ds := range got {
		mono, err := dfa.Conjunction(ds...)
		require.NoError(t, err)
		eq, err := mono.Equal(reference)
		require.NoError(t, err)
		require.True(t, eq)
	}
}

func TestFindDecomposition_ZeroQueries(t *testing.T) {
	// With the reference itself a single state, every seed is accepted and
	// the one-component decomposition is exact.
	all, err := dfa.FromSpec(ab, 0, []dfa.Spec{{Accepting: true, Next: map[string]int{"a": 0, "b": 0}}})
	require.NoError(t, err)

	decomps, err := active.FindDecomposition(context.Background(), all, 1, 0, 3)
	require.NoError(t, err)
	ds, err := decomps.Next(context.Background())
	require.NoError(t, err)
	require.Len(t, ds, 1)
	eq, err := ds[0].Equal(all)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestFindDecomposition_NegativeCounts(t *testing.T) {
	all, err := dfa.FromSpec(ab, 0, []dfa.Spec{{Accepting: true, Next: map[string]int{"a": 0, "b": 0}}})
	require.NoError(t, err)

	_, err = active.FindDecomposition(context.Background(), all, 2, 1, -1)
	require.ErrorIs(t, err, active.ErrNegativeCount)
	_, err = active.FindDecomposition(context.Background(), all, 2, -1, 1)
	require.ErrorIs(t, err, active.ErrNegativeCount)
}
