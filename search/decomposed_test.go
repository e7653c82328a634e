package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/search"
)

// DecomposedSuite runs the traffic-light examples: y(ellow), g(reen),
// b(lue), r(ed).
type DecomposedSuite struct {
	suite.Suite
	ctx context.Context
	acc []alphabet.Word
	rej []alphabet.Word
}

func (s *DecomposedSuite) SetupTest() {
	s.ctx = context.Background()
	s.acc = alphabet.Words("y", "yy", "gy", "bgy", "bbgy", "bggy")
	s.rej = alphabet.Words("", "r", "ry", "by", "yr", "gr", "rr", "rry", "rygy")
}

func (s *DecomposedSuite) first(opts ...search.Option) []*dfa.DFA {
	st, err := search.FindDecomposedDFAs(s.acc, s.rej, 2, opts...)
	s.Require().NoError(err)
	ds, err := st.Next(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(ds, 2)
	return ds
}

func (s *DecomposedSuite) label(d *dfa.DFA, w alphabet.Word) bool {
	l, err := d.Label(w)
	s.Require().NoError(err)
	return l
}

func (s *DecomposedSuite) TestConjunctionStutterSizes() {
	ds := s.first(search.WithOrderByStutter(true))
	s.Equal([]int{2, 3}, []int{ds[0].States(), ds[1].States()})

	mono, err := dfa.Conjunction(ds...)
	s.Require().NoError(err)
	for _, w := range s.acc {
		s.True(s.label(mono, w), "accepting %s", w)
	}
	for _, w := range s.rej {
		s.False(s.label(mono, w), "rejecting %s", w)
	}
}

func (s *DecomposedSuite) TestDisjunction() {
	ds := s.first(search.WithOrderByStutter(true), search.WithDecomposeVia(codec.Disjunction))
	s.Less(ds[0].States(), ds[1].States())

	for _, w := range s.rej {
		for _, d := range ds {
			s.False(s.label(d, w), "every component rejects %s", w)
		}
	}
	for _, w := range s.acc {
		s.True(s.label(ds[0], w) || s.label(ds[1], w), "some component accepts %s", w)
	}
}

func (s *DecomposedSuite) TestParetoOrder() {
	st, err := search.FindDecomposedDFAs(s.acc, s.rej, 2, search.WithMaxStates(4))
	s.Require().NoError(err)
	all, err := st.Take(s.ctx, 200)
	s.Require().NoError(err)
	s.Require().NotEmpty(all)

	// Without unminimized results, no yielded tuple dominates an earlier one.
	var sizes [][2]int
	for _, ds := range all {
		cur := [2]int{ds[0].States(), ds[1].States()}
		s.Less(cur[0], cur[1])
		for _, prev := range sizes {
			if prev != cur {
				s.False(cur[0] >= prev[0] && cur[1] >= prev[1], "%v dominates %v", cur, prev)
			}
		}
		sizes = append(sizes, cur)
	}
}

func (s *DecomposedSuite) TestErrors() {
	_, err := search.FindDecomposedDFAs(s.acc, s.rej, 0)
	s.ErrorIs(err, search.ErrArity)

	_, err = search.FindDecomposedDFAs(s.acc, s.rej, 2, search.WithDecomposeVia("xor"))
	s.ErrorIs(err, codec.ErrMode)
}

func TestDecomposedSuite(t *testing.T) {
	suite.Run(t, new(DecomposedSuite))
}

func TestFindDecomposedDFAs_SmallScenario(t *testing.T) {
	st, err := search.FindDecomposedDFAs(acc1, rej1, 2)
	require.NoError(t, err)
	ds, err := st.Next(context.Background())
	require.NoError(t, err)
	require.Less(t, ds[0].States(), ds[1].States())

	mono, err := dfa.Conjunction(ds...)
	require.NoError(t, err)
	requireConsistent(t, mono, acc1, rej1)
}

func TestFindDecomposedDFAs_Preferences(t *testing.T) {
	ctx := context.Background()
	acc := alphabet.Words("ab")
	rej := alphabet.Words("b")
	// "a" is no more preferred than the rejected "b"; "aa" behaves like the
	// accepted "ab".
	ordered := apta.WordPair{First: alphabet.FromString("a"), Second: alphabet.FromString("b")}
	equivalent := apta.WordPair{First: alphabet.FromString("aa"), Second: alphabet.FromString("ab")}

	for _, mode := range []codec.Mode{codec.Conjunction, codec.Disjunction} {
		t.Run(string(mode), func(t *testing.T) {
			st, err := search.FindDecomposedDFAs(acc, rej, 2,
				search.WithDecomposeVia(mode),
				search.WithOrderedPreferences(ordered),
				search.WithEquivalentPreferences(equivalent),
			)
			require.NoError(t, err)
			all, err := st.Take(ctx, 30)
			require.NoError(t, err)
			require.NotEmpty(t, all)

			for _, ds := range all {
				mono, err := mode.Combine(ds...)
				require.NoError(t, err)
				requireConsistent(t, mono, acc, rej)

				l, err := mono.Label(alphabet.FromString("a"))
				require.NoError(t, err)
				require.False(t, l, "a must follow the rejected b")
				l, err = mono.Label(alphabet.FromString("aa"))
				require.NoError(t, err)
				require.True(t, l, "aa must follow the accepted ab")
			}
		})
	}
}
