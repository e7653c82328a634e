package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/consistency"
	"github.com/katalvlaran/dfaid/core"
	"github.com/katalvlaran/dfaid/dfa"
)

// Model is a satisfying assignment together with the codec that produced it.
type Model struct {
	Codec      *codec.Codec
	Assignment []int
}

// DFA decodes the model.
func (m Model) DFA() (*dfa.DFA, error) {
	return m.Codec.Decode(m.Assignment)
}

// FindModels returns the stream of models of the smallest consistent sizes.
// Input contradictions are reported immediately; the consistency graph is
// built on the first Next.
func FindModels(accepting, rejecting []alphabet.Word, opts ...Option) (*Stream[Model], error) {
	o := NewOptions(opts...)
	t, err := o.tree(accepting, rejecting)
	if err != nil {
		return nil, err
	}
	w := &walk{o: o, tree: t}

	return NewStream(w.pull), nil
}

// FindDFAs is FindModels with every model decoded.
func FindDFAs(accepting, rejecting []alphabet.Word, opts ...Option) (*Stream[*dfa.DFA], error) {
	models, err := FindModels(accepting, rejecting, opts...)
	if err != nil {
		return nil, err
	}

	return Map(models, Model.DFA), nil
}

// FindDFA returns the first automaton of FindDFAs.
func FindDFA(ctx context.Context, accepting, rejecting []alphabet.Word, opts ...Option) (*dfa.DFA, error) {
	dfas, err := FindDFAs(accepting, rejecting, opts...)
	if err != nil {
		return nil, err
	}

	return dfas.Next(ctx)
}

// walk is the monolithic size walk behind FindModels.
type walk struct {
	o     Options
	tree  *apta.APTA
	graph *core.Graph

	k     int
	hits  int // models yielded at size k
	found bool
	codec *codec.Codec
	cur   *enumerator
}

func (w *walk) pull(ctx context.Context) (Model, error) {
	// 1) Lazy setup: consistency graph and first size.
	if w.graph == nil {
		g, err := consistency.Build(w.tree, consistency.WithContext(ctx))
		if err != nil {
			return Model{}, err
		}
		w.graph, w.k = g, 1
		w.o.Logger.Debug("search: consistency graph built",
			"nodes", w.tree.Size(), "edges", g.EdgeCount())
		if w.o.ProbeWorkers > 1 {
			if w.k, err = minimalSize(ctx, w.tree, g, w.o); err != nil {
				return Model{}, err
			}
		}
	}

	for {
		// 2) Encode the current size.
		if w.cur == nil {
			if w.o.MaxStates > 0 && w.k > w.o.MaxStates {
				return Model{}, ErrExhausted
			}
			c, err := codec.New(w.tree, w.graph, w.k)
			if err != nil {
				return Model{}, err
			}
			w.codec, w.cur, w.hits = c, newEnumerator(c, w.o), 0
		}

		// 3) Next distinct automaton of this size.
		m, ok, err := w.cur.next(ctx)
		if err != nil {
			return Model{}, err
		}
		if ok {
			w.hits++

			return Model{Codec: w.codec, Assignment: m}, nil
		}

		// 4) Size exhausted.
		w.cur = nil
		if w.hits == 0 {
			w.o.Logger.Debug("search: size unsatisfiable", "states", w.k)
			if !w.found && w.k >= w.tree.Size() {
				return Model{}, ErrExhausted
			}
		} else {
			w.o.Logger.Debug("search: size exhausted", "states", w.k, "models", w.hits)
			w.found = true
			if !w.o.AllowUnminimized {
				return Model{}, ErrExhausted
			}
		}
		w.k++
	}
}

// ErrArity indicates a decomposition into fewer than one automaton.
var ErrArity = errors.New("search: decomposition needs at least one automaton")

// FindDecomposedDFAs returns the stream of nDFAs-component decompositions,
// each ordered by strictly increasing component size.
func FindDecomposedDFAs(accepting, rejecting []alphabet.Word, nDFAs int, opts ...Option) (*Stream[[]*dfa.DFA], error) {
	if nDFAs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrArity, nDFAs)
	}
	o := NewOptions(opts...)
	if !o.DecomposeVia.Valid() {
		return nil, fmt.Errorf("%w: %q", codec.ErrMode, string(o.DecomposeVia))
	}
	t, err := o.tree(accepting, rejecting)
	if err != nil {
		return nil, err
	}
	w := &decomposedWalk{o: o, tree: t, n: nDFAs, hi: nDFAs - 1}

	return NewStream(w.pull), nil
}

// decomposedWalk enumerates size tuples along the Pareto frontier.
type decomposedWalk struct {
	o    Options
	tree *apta.APTA
	n    int

	hi    int     // largest component size of the queued tuples
	queue [][]int // tuples left at hi
	sat   [][]int // satisfiable tuples seen so far

	sizes []int
	hits  int
	codec *codec.Decomposed
	cur   *enumerator
}

func (w *decomposedWalk) limit() int {
	switch {
	case w.o.MaxStates > 0:
		return w.o.MaxStates
	case !w.o.AllowUnminimized:
		return w.tree.Size() + w.n
	default:
		return int(^uint(0) >> 1)
	}
}

func (w *decomposedWalk) pull(ctx context.Context) ([]*dfa.DFA, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 1) Pick the next tuple.
		if w.cur == nil {
			if len(w.queue) == 0 {
				if w.hi >= w.limit() {
					return nil, ErrExhausted
				}
				w.hi++
				w.queue = tuples(w.n, w.hi)
				continue
			}
			sizes := w.queue[0]
			w.queue = w.queue[1:]
			if !w.o.AllowUnminimized && dominatesAny(sizes, w.sat) {
				continue
			}
			dc, err := codec.NewDecomposed(w.tree, sizes, w.o.DecomposeVia)
			if err != nil {
				return nil, err
			}
			w.sizes, w.codec, w.cur, w.hits = sizes, dc, newEnumerator(dc, w.o), 0
		}

		// 2) Next model for the tuple.
		m, ok, err := w.cur.next(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			if w.hits == 0 {
				w.sat = append(w.sat, w.sizes)
			}
			w.hits++

			return w.codec.Decode(m)
		}
		w.o.Logger.Debug("search: sizes exhausted", "sizes", w.sizes, "models", w.hits)
		w.cur = nil
	}
}
