package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/dfa"
)

func TestNewDecomposed_Errors(t *testing.T) {
	tr := tree(t, scenarioAcc, scenarioRej)

	_, err := codec.NewDecomposed(tr, nil, codec.Conjunction)
	require.ErrorIs(t, err, codec.ErrComponents)

	_, err = codec.NewDecomposed(tr, []int{3, 2}, codec.Conjunction)
	require.ErrorIs(t, err, codec.ErrSizeOrder)

	_, err = codec.NewDecomposed(tr, []int{2, 3}, "xor")
	require.ErrorIs(t, err, codec.ErrMode)

	_, err = codec.NewDecomposed(tr, []int{0, 3}, codec.Conjunction)
	require.ErrorIs(t, err, codec.ErrColors)
}

func TestDecomposed_Layout(t *testing.T) {
	tr := tree(t, scenarioAcc, scenarioRej)
	d, err := codec.NewDecomposed(tr, []int{2, 3}, codec.Conjunction)
	require.NoError(t, err)

	cs := d.Components()
	require.Len(t, cs, 2)
	require.Equal(t, []int{2, 3}, d.Sizes())
	require.Equal(t, 0, cs[0].Offset())
	require.Equal(t, cs[0].MaxID(), cs[1].Offset())
	require.Greater(t, d.MaxID(), cs[1].MaxID())
	require.NotEmpty(t, d.Clauses())
}

// Stacking a monolithic model with its shifted copy satisfies the (k,k)
// components and decodes to two copies of the same automaton.
func TestDecomposed_StackedMonolithicModel(t *testing.T) {
	tr := tree(t, scenarioAcc, scenarioRej)
	mono, m := minimal(t, tr)

	d, err := codec.NewDecomposed(tr, []int{mono.Colors(), mono.Colors()}, codec.Conjunction)
	require.NoError(t, err)

	model := append(append([]int(nil), m...), codec.OffsetLits(m, mono.MaxID())...)
	ds, err := d.Decode(model)
	require.NoError(t, err)
	require.Len(t, ds, 2)

	eq, err := ds[0].Equal(ds[1])
	require.NoError(t, err)
	require.True(t, eq)
}

// firstDecomposition walks strictly increasing pairs by largest component.
func firstDecomposition(t *testing.T, acc, rej []string, mode codec.Mode) []*dfa.DFA {
	t.Helper()
	tr := tree(t, acc, rej)
	for hi := 2; hi <= tr.Size()+2; hi++ {
		for lo := 1; lo < hi; lo++ {
			d, err := codec.NewDecomposed(tr, []int{lo, hi}, mode)
			require.NoError(t, err)
			if m, ok := solve(t, d.Clauses(), d.MaxID()); ok {
				ds, err := d.Decode(m)
				require.NoError(t, err)
				return ds
			}
		}
	}
	t.Fatal("no decomposition")
	return nil
}

func TestDecomposed_Conjunction(t *testing.T) {
	ds := firstDecomposition(t, scenarioAcc, scenarioRej, codec.Conjunction)
	require.Less(t, ds[0].States(), ds[1].States())

	for _, w := range scenarioAcc {
		for _, d := range ds {
			l, err := d.Label(alphabet.FromString(w))
			require.NoError(t, err)
			require.True(t, l, "every component accepts %q", w)
		}
	}
	both, err := codec.Conjunction.Combine(ds...)
	require.NoError(t, err)
	requireConsistent(t, both, scenarioAcc, scenarioRej)
}

func TestDecomposed_Disjunction(t *testing.T) {
	acc := []string{"y", "yy", "gy", "bgy", "bbgy", "bggy"}
	rej := []string{"", "r", "ry", "by", "yr", "gr", "rr", "rry", "rygy"}
	ds := firstDecomposition(t, acc, rej, codec.Disjunction)

	for _, w := range rej {
		for _, d := range ds {
			l, err := d.Label(alphabet.FromString(w))
			require.NoError(t, err)
			require.False(t, l, "every component rejects %q", w)
		}
	}
	for _, w := range acc {
		some := false
		for _, d := range ds {
			l, err := d.Label(alphabet.FromString(w))
			require.NoError(t, err)
			some = some || l
		}
		require.True(t, some, "some component accepts %q", w)
	}
	either, err := codec.Disjunction.Combine(ds...)
	require.NoError(t, err)
	requireConsistent(t, either, acc, rej)
}

func TestMode_CombineUnknown(t *testing.T) {
	_, err := codec.Mode("nand").Combine()
	require.ErrorIs(t, err, codec.ErrMode)
}
