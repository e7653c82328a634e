package consistency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/consistency"
	"github.com/katalvlaran/dfaid/dfa"
)

func tree(t *testing.T, acc, rej []string) *apta.APTA {
	t.Helper()
	tr, err := apta.FromExamples(alphabet.Words(acc...), alphabet.Words(rej...))
	require.NoError(t, err)
	return tr
}

func node(t *testing.T, tr *apta.APTA, w string) int {
	t.Helper()
	n, ok := tr.Access(alphabet.FromString(w))
	require.True(t, ok, w)
	return n
}

func TestBuild_LabelConflictOnly(t *testing.T) {
	tr := tree(t, []string{"a"}, []string{"b"})
	g, err := consistency.Build(tr)
	require.NoError(t, err)

	a, b := node(t, tr, "a"), node(t, tr, "b")
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge(a, b))
	require.False(t, g.HasEdge(apta.Root, a), "root is unlabeled and may merge with a")
}

func TestBuild_PropagatedConflict(t *testing.T) {
	tr := tree(t, []string{"aa"}, []string{"ba"})
	g, err := consistency.Build(tr)
	require.NoError(t, err)

	require.True(t, g.HasEdge(node(t, tr, "aa"), node(t, tr, "ba")))
	require.True(t, g.HasEdge(node(t, tr, "a"), node(t, tr, "b")), "a and b disagree one step later")
	require.False(t, g.HasEdge(apta.Root, node(t, tr, "a")))
}

func TestBuild_OriginalPairSubstitution(t *testing.T) {
	// Merging ε with "a" makes "aab" equivalent to "b". The conflict is only
	// reachable through the pair (ε, aa) produced by substituting ε for "a"
	// in the successor pair (a, aa).
	tr := tree(t, []string{"aab"}, []string{"b"})
	g, err := consistency.Build(tr)
	require.NoError(t, err)

	require.True(t, g.HasEdge(apta.Root, node(t, tr, "a")))
	require.True(t, g.HasEdge(node(t, tr, "aab"), node(t, tr, "b")))
}

func TestBuild_EdgesAreSimple(t *testing.T) {
	tr := tree(t, []string{"a", "abaa", "bb"}, []string{"abb", "b"})
	g, err := consistency.Build(tr)
	require.NoError(t, err)
	require.Equal(t, tr.Size(), g.VertexCount())
	for _, e := range g.Edges() {
		require.Less(t, e.U, e.V)
	}
	for _, u := range tr.Accepting() {
		for _, v := range tr.Rejecting() {
			require.True(t, g.HasEdge(u, v), "accept/reject pair (%d,%d)", u, v)
		}
	}
}

// TestBuild_SoundAgainstTarget checks that no edge separates two nodes that a
// consistent automaton maps to the same state.
func TestBuild_SoundAgainstTarget(t *testing.T) {
	ab := alphabet.MustNew("a", "b")
	target, err := dfa.FromSpec(ab, 0, []dfa.Spec{
		{Accepting: false, Next: map[string]int{"a": 1, "b": 0}},
		{Accepting: false, Next: map[string]int{"a": 2, "b": 0}},
		{Accepting: true, Next: map[string]int{"a": 2, "b": 2}},
	})
	require.NoError(t, err)

	var acc, rej []alphabet.Word
	for _, w := range ab.Words().Take(31) {
		ok, err := target.Label(w)
		require.NoError(t, err)
		if ok {
			acc = append(acc, w)
		} else {
			rej = append(rej, w)
		}
	}
	tr, err := apta.FromExamples(acc, rej)
	require.NoError(t, err)
	g, err := consistency.Build(tr)
	require.NoError(t, err)
	require.Positive(t, g.EdgeCount())

	state := func(n int) int {
		s, ok, err := target.Run(tr.Word(n))
		require.NoError(t, err)
		require.True(t, ok)
		return s
	}
	for _, e := range g.Edges() {
		require.NotEqual(t, state(e.U), state(e.V), "edge (%d,%d) splits one target state", e.U, e.V)
	}
}

func TestBuild_Cancelled(t *testing.T) {
	tr := tree(t, []string{"a"}, []string{"b"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := consistency.Build(tr, consistency.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCanMerge(t *testing.T) {
	tr := tree(t, []string{"a"}, []string{"b"})
	g, err := consistency.Build(tr)
	require.NoError(t, err)
	require.True(t, consistency.CanMerge(tr, g, apta.Root, node(t, tr, "b")))
	require.False(t, consistency.CanMerge(tr, g, node(t, tr, "a"), node(t, tr, "b")))
}
