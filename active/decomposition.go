package active

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/search"
)

// FindDecomposition learns nDFAs-component decompositions of reference.
//
// Steps:
//  1. Label the first nInitExamples words over reference's alphabet.
//  2. Up to nQueries times: draw the next candidate, combine it, and if it
//     differs from reference add a shortest separating word to the examples
//     and restart the decomposed search.
//  3. Return the decomposed search over the final examples, filtered to
//     candidates whose combination is language-equal to reference.
//
// It returns ErrNegativeCount when nQueries or nInitExamples is negative, and
// panics if a candidate disagrees with an example it was built from.
func FindDecomposition(ctx context.Context, reference *dfa.DFA, nDFAs, nQueries, nInitExamples int, opts ...search.Option) (*search.Stream[[]*dfa.DFA], error) {
	if nQueries < 0 || nInitExamples < 0 {
		return nil, fmt.Errorf("%w: queries=%d examples=%d", ErrNegativeCount, nQueries, nInitExamples)
	}
	ab := reference.Alphabet()
	opts = append([]search.Option{search.WithAlphabet(ab)}, opts...)
	o := search.NewOptions(opts...)
	oracle := FromDFA(reference)

	// 1) Seed examples.
	var ex Examples
	for _, w := range ab.Words().Take(nInitExamples) {
		v, err := oracle.Query(ctx, w)
		if err != nil {
			return nil, err
		}
		ex.Add(w, v)
	}

	gen, err := search.FindDecomposedDFAs(ex.Accepting, ex.Rejecting, nDFAs, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Refine with counterexamples.
	for q := 0; q < nQueries; q++ {
		cand, err := gen.Next(ctx)
		if errors.Is(err, search.ErrExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}
		mono, err := o.DecomposeVia.Combine(cand...)
		if err != nil {
			return nil, err
		}
		mustAgree(mono, ex)

		w, ok, err := mono.Distinguish(reference)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		v, err := oracle.Query(ctx, w)
		if err != nil {
			return nil, err
		}
		o.Logger.Debug("active: counterexample", "n", q, "word", w.String(), "verdict", v.String())
		ex.Add(w, v)
		if gen, err = search.FindDecomposedDFAs(ex.Accepting, ex.Rejecting, nDFAs, opts...); err != nil {
			return nil, err
		}
	}

	// 3) Keep exact decompositions only.
	final, err := search.FindDecomposedDFAs(ex.Accepting, ex.Rejecting, nDFAs, opts...)
	if err != nil {
		return nil, err
	}

	return search.Filter(final, func(ds []*dfa.DFA) (bool, error) {
		mono, err := o.DecomposeVia.Combine(ds...)
		if err != nil {
			return false, err
		}

		return mono.Equal(reference)
	}), nil
}

// mustAgree panics if d mislabels an example.
func mustAgree(d *dfa.DFA, ex Examples) {
	check := func(ws []alphabet.Word, want bool) {
		for _, w := range ws {
			got, err := d.Label(w)
			if err != nil || got != want {
				panic(fmt.Sprintf("active: candidate labels %s as %v, example says %v (err=%v)", w, got, want, err))
			}
		}
	}
	check(ex.Accepting, true)
	check(ex.Rejecting, false)
}
