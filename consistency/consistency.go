package consistency

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/core"
	"github.com/katalvlaran/dfaid/dfs"
)

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Ctx is checked between pair searches and inside each search.
	Ctx context.Context
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// pair is a normalized (l < r) node pair.
type pair struct{ l, r int }

func newPair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{l: a, r: b}
}

// Build returns the consistency graph of t. Pairs are examined in
// lexicographic (u, v) order, so memoized refutations are reproducible.
func Build(t *apta.APTA, opts ...Option) (*core.Graph, error) {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	n := t.Size()
	g := core.NewGraph(n)
	for u := 0; u < n; u++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		for v := u + 1; v < n; v++ {
			ok, err := canMerge(o.Ctx, t, g, u, v)
			if err != nil {
				return nil, err
			}
			if ok {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("consistency: add edge (%d,%d): %w", u, v, err)
			}
		}
	}

	return g, nil
}

// CanMerge reports whether the refutation search for (u, v) fails against
// the edges already present in g.
func CanMerge(t *apta.APTA, g *core.Graph, u, v int) bool {
	ok, _ := canMerge(context.Background(), t, g, u, v)

	return ok
}

func canMerge(ctx context.Context, t *apta.APTA, g *core.Graph, u, v int) (bool, error) {
	visit := func(p pair) ([]pair, bool) {
		if g.HasEdge(p.l, p.r) {
			return nil, true // known distinguished nodes
		}
		if t.Label(p.l).Conflicts(t.Label(p.r)) {
			return nil, true // distinguishing path found
		}

		return successors(t, p, u, v), false
	}

	res, err := dfs.Search(newPair(u, v), visit, dfs.WithContext(ctx))
	if err != nil {
		return false, err
	}

	return !res.Stopped, nil
}

// successors groups the children of p by symbol and applies the u/v
// interchange; only two-element groups need exploring.
func successors(t *apta.APTA, p pair, u, v int) []pair {
	groups := make([][]int, 0, t.Alphabet().Size())
	for a := 0; a < t.Alphabet().Size(); a++ {
		cl, okl := t.Child(p.l, a)
		cr, okr := t.Child(p.r, a)
		switch {
		case okl && okr:
			groups = append(groups, []int{cl, cr})
		case okl:
			groups = append(groups, []int{cl})
		case okr:
			groups = append(groups, []int{cr})
		}
	}

	// Interchange u and v: the second pass also sees groups added by the first.
	for _, swap := range [2][2]int{{u, v}, {v, u}} {
		keep, drop := swap[0], swap[1]
		n := len(groups)
		for i := 0; i < n; i++ {
			if r, ok := replace(groups[i], drop, keep); ok {
				groups = append(groups, r)
			}
		}
	}

	next := make([]pair, 0, len(groups))
	for _, grp := range groups {
		if len(grp) == 2 {
			next = append(next, newPair(grp[0], grp[1]))
		}
	}

	return next
}

// replace returns (grp ∪ {keep}) \ {drop} as a set, if drop ∈ grp.
func replace(grp []int, drop, keep int) ([]int, bool) {
	found := false
	for _, x := range grp {
		if x == drop {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}
	out := []int{keep}
	for _, x := range grp {
		if x != drop && x != keep {
			out = append(out, x)
		}
	}

	return out, true
}
