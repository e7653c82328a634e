package active

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/search"
)

// Sentinel errors for active learning.
var (
	// ErrNoHypothesis indicates that no automaton is consistent with the examples.
	ErrNoHypothesis = errors.New("active: no consistent automaton")

	// ErrNoQuery indicates that every word over the alphabet is already labeled
	// (only possible over the empty alphabet).
	ErrNoQuery = errors.New("active: no unlabeled word left")

	// ErrNegativeCount indicates a negative query or example budget.
	ErrNegativeCount = errors.New("active: negative count")
)

// Examples is the growing example set of a learning run.
type Examples struct {
	Accepting []alphabet.Word
	Rejecting []alphabet.Word
}

// Add records w under v. Unknown is a no-op.
func (e *Examples) Add(w alphabet.Word, v Verdict) {
	switch v {
	case Accept:
		e.Accepting = append(e.Accepting, w)
	case Reject:
		e.Rejecting = append(e.Rejecting, w)
	}
}

func (e *Examples) constrained() map[string]bool {
	seen := make(map[string]bool, len(e.Accepting)+len(e.Rejecting))
	for _, ws := range [][]alphabet.Word{e.Accepting, e.Rejecting} {
		for _, w := range ws {
			seen[w.Key()] = true
		}
	}

	return seen
}

// DistinguishingQuery returns a word separating the two smallest consistent
// automata of different languages, or the first unconstrained word when no
// second language shows up among the smallest candidates.
func DistinguishingQuery(ctx context.Context, ex Examples, ab *alphabet.Alphabet, opts ...search.Option) (alphabet.Word, error) {
	opts = append([]search.Option{search.WithAlphabet(ab)}, opts...)
	dfas, err := search.FindDFAs(ex.Accepting, ex.Rejecting, opts...)
	if err != nil {
		return nil, err
	}

	// 1) Smallest hypothesis.
	first, err := dfas.Next(ctx)
	if errors.Is(err, search.ErrExhausted) {
		return nil, ErrNoHypothesis
	}
	if err != nil {
		return nil, err
	}

	// 2) Next hypothesis with a different language.
	for {
		d, err := dfas.Next(ctx)
		if errors.Is(err, search.ErrExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}
		w, ok, err := first.Distinguish(d)
		if err != nil {
			return nil, err
		}
		if ok {
			return w, nil
		}
	}

	// 3) Fallback: first word not yet labeled.
	seen := ex.constrained()
	it := ab.Words()
	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		w, ok := it.Next()
		if !ok {
			return nil, ErrNoQuery
		}
		if !seen[w.Key()] {
			return w, nil
		}
	}
}

// FindDFAsActive spends nQueries oracle queries, then returns the stream of
// automata consistent with every collected example. The final search is
// stutter-ordered and allows unminimized results unless opts override it.
func FindDFAsActive(ctx context.Context, ab *alphabet.Alphabet, oracle Oracle, nQueries int, ex Examples, opts ...search.Option) (*search.Stream[*dfa.DFA], Examples, error) {
	ex = Examples{
		Accepting: append([]alphabet.Word(nil), ex.Accepting...),
		Rejecting: append([]alphabet.Word(nil), ex.Rejecting...),
	}
	log := search.NewOptions(opts...).Logger

	for q := 0; q < nQueries; q++ {
		w, err := DistinguishingQuery(ctx, ex, ab, opts...)
		if err != nil {
			return nil, ex, fmt.Errorf("active: query %d: %w", q, err)
		}
		v, err := oracle.Query(ctx, w)
		if err != nil {
			return nil, ex, fmt.Errorf("active: oracle on %s: %w", w, err)
		}
		log.Debug("active: query", "n", q, "word", w.String(), "verdict", v.String())
		ex.Add(w, v)
	}

	final := append([]search.Option{
		search.WithAlphabet(ab),
		search.WithOrderByStutter(true),
		search.WithAllowUnminimized(true),
	}, opts...)
	dfas, err := search.FindDFAs(ex.Accepting, ex.Rejecting, final...)
	if err != nil {
		return nil, ex, err
	}

	return dfas, ex, nil
}

// FindDFAActive returns the first automaton of FindDFAsActive.
func FindDFAActive(ctx context.Context, ab *alphabet.Alphabet, oracle Oracle, nQueries int, ex Examples, opts ...search.Option) (*dfa.DFA, Examples, error) {
	dfas, ex, err := FindDFAsActive(ctx, ab, oracle, nQueries, ex, opts...)
	if err != nil {
		return nil, ex, err
	}
	d, err := dfas.Next(ctx)
	if errors.Is(err, search.ErrExhausted) {
		return nil, ex, ErrNoHypothesis
	}

	return d, ex, err
}
