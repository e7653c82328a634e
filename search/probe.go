package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/consistency"
	"github.com/katalvlaran/dfaid/core"
	"github.com/katalvlaran/dfaid/sat"
)

// MinimalSize returns the smallest number of states of an automaton
// consistent with the examples. Sizes are probed in batches of
// Options.ProbeWorkers, each size with its own solver; it returns
// ErrExhausted if no size up to the APTA size (or WithMaxStates) works.
func MinimalSize(ctx context.Context, accepting, rejecting []alphabet.Word, opts ...Option) (int, error) {
	o := NewOptions(opts...)
	t, err := o.tree(accepting, rejecting)
	if err != nil {
		return 0, err
	}
	g, err := consistency.Build(t, consistency.WithContext(ctx))
	if err != nil {
		return 0, err
	}

	return minimalSize(ctx, t, g, o)
}

func minimalSize(ctx context.Context, t *apta.APTA, g *core.Graph, o Options) (int, error) {
	upper := t.Size()
	if o.MaxStates > 0 && o.MaxStates < upper {
		upper = o.MaxStates
	}
	workers := max(o.ProbeWorkers, 1)

	for lo := 1; lo <= upper; lo += workers {
		hi := min(lo+workers-1, upper)
		found := make([]bool, hi-lo+1)

		eg, ectx := errgroup.WithContext(ctx)
		for k := lo; k <= hi; k++ {
			k := k
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				c, err := codec.New(t, g, k)
				if err != nil {
					return err
				}
				s, err := sat.New(o.Backend)
				if err != nil {
					return err
				}
				if err = sat.AddAll(s, c.Clauses()); err != nil {
					return err
				}
				found[k-lo] = s.Solve()

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return 0, err
		}
		o.Logger.Debug("search: probed sizes", "from", lo, "to", hi, "sat", found)

		for i, ok := range found {
			if ok {
				return lo + i, nil
			}
		}
	}

	return 0, ErrExhausted
}
