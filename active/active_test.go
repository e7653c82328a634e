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

var ab = alphabet.MustNew("a", "b")

// endsWithB accepts the words whose last symbol is b.
func endsWithB(t *testing.T) *dfa.DFA {
	t.Helper()
	d, err := dfa.FromSpec(ab, 0, []dfa.Spec{
		{Next: map[string]int{"a": 0, "b": 1}},
		{Accepting: true, Next: map[string]int{"a": 0, "b": 1}},
	})
	require.NoError(t, err)
	return d
}

func requireConsistent(t *testing.T, d *dfa.DFA, ex active.Examples) {
	t.Helper()
	for _, w := range ex.Accepting {
		l, err := d.Label(w)
		require.NoError(t, err)
		require.True(t, l, "accepting %s", w)
	}
	for _, w := range ex.Rejecting {
		l, err := d.Label(w)
		require.NoError(t, err)
		require.False(t, l, "rejecting %s", w)
	}
}

func TestVerdictAndOracles(t *testing.T) {
	require.Equal(t, "accept", active.Accept.String())
	require.Equal(t, "reject", active.Reject.String())
	require.Equal(t, "unknown", active.Unknown.String())

	ctx := context.Background()
	o := active.FromDFA(endsWithB(t))
	v, err := o.Query(ctx, alphabet.FromString("ab"))
	require.NoError(t, err)
	require.Equal(t, active.Accept, v)
	v, err = o.Query(ctx, alphabet.FromString("ba"))
	require.NoError(t, err)
	require.Equal(t, active.Reject, v)
	_, err = o.Query(ctx, alphabet.FromString("c"))
	require.ErrorIs(t, err, alphabet.ErrUnknownSymbol)

	f := active.OracleFunc(func(alphabet.Word) active.Verdict { return active.Unknown })
	v, err = f.Query(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, active.Unknown, v)
}

func TestExamples_Add(t *testing.T) {
	var ex active.Examples
	ex.Add(alphabet.FromString("a"), active.Accept)
	ex.Add(alphabet.FromString("b"), active.Reject)
	ex.Add(alphabet.FromString("ab"), active.Unknown)
	require.Equal(t, alphabet.Words("a"), ex.Accepting)
	require.Equal(t, alphabet.Words("b"), ex.Rejecting)
}

func TestDistinguishingQuery_SeparatesHypotheses(t *testing.T) {
	ex := active.Examples{Accepting: alphabet.Words("b"), Rejecting: alphabet.Words("")}
	w, err := active.DistinguishingQuery(context.Background(), ex, ab)
	require.NoError(t, err)

	// Consistent hypotheses agree on the examples, so w is a new word.
	for _, e := range append(ex.Accepting, ex.Rejecting...) {
		require.False(t, w.Equal(e), "query %s repeats an example", w)
	}
}

func TestDistinguishingQuery_Fallback(t *testing.T) {
	// Over {a} the only one-state hypothesis accepts everything, so the first
	// unlabeled word is asked.
	unary := alphabet.MustNew("a")
	ex := active.Examples{Accepting: alphabet.Words("", "a", "aa")}
	w, err := active.DistinguishingQuery(context.Background(), ex, unary)
	require.NoError(t, err)
	require.Equal(t, "aaa", w.String())

	_, err = active.DistinguishingQuery(context.Background(),
		active.Examples{Accepting: alphabet.Words("")}, alphabet.MustNew())
	require.ErrorIs(t, err, active.ErrNoQuery)
}

func TestFindDFAActive_ConsistentWithQueries(t *testing.T) {
	target := endsWithB(t)
	seed := active.Examples{Accepting: alphabet.Words("b"), Rejecting: alphabet.Words("a")}

	d, ex, err := active.FindDFAActive(context.Background(), ab, active.FromDFA(target), 6, seed)
	require.NoError(t, err)
	require.Equal(t, len(seed.Accepting)+len(seed.Rejecting)+6, len(ex.Accepting)+len(ex.Rejecting))
	requireConsistent(t, d, ex)
	require.Equal(t, alphabet.Words("b"), seed.Accepting, "seed is not mutated")
}

func TestFindDFAsActive_UnknownAddsNothing(t *testing.T) {
	seed := active.Examples{Accepting: alphabet.Words("b"), Rejecting: alphabet.Words("a")}
	idk := active.OracleFunc(func(alphabet.Word) active.Verdict { return active.Unknown })

	dfas, ex, err := active.FindDFAsActive(context.Background(), ab, idk, 3, seed,
		search.WithMaxStates(2))
	require.NoError(t, err)
	require.Equal(t, seed, ex)

	d, err := dfas.Next(context.Background())
	require.NoError(t, err)
	requireConsistent(t, d, ex)
}

func TestFindDFAActive_NoHypothesis(t *testing.T) {
	seed := active.Examples{Accepting: alphabet.Words("b"), Rejecting: alphabet.Words("a")}
	_, _, err := active.FindDFAActive(context.Background(), ab, active.FromDFA(endsWithB(t)), 0, seed,
		search.WithMaxStates(1))
	require.ErrorIs(t, err, active.ErrNoHypothesis)
}
