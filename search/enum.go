package search

import (
	"context"

	"github.com/katalvlaran/dfaid/codec"
	"github.com/katalvlaran/dfaid/sat"
)

// encoder is the part of a codec the enumerator needs; *codec.Codec and
// *codec.Decomposed implement it.
type encoder interface {
	Clauses() [][]int
	MaxID() int
	Blocking(model []int) []int
	NonStutterLits() []int
}

// enumerator yields the distinct models of one encoder.
type enumerator struct {
	enc     encoder
	backend sat.Backend
	stutter bool

	clauses [][]int
	blocks  [][]int
	solver  sat.Solver
	bound   int // current non-stutter bound when stutter is set
	lits    []int
	started bool
	done    bool
}

func newEnumerator(enc encoder, o Options) *enumerator {
	return &enumerator{enc: enc, backend: o.Backend, stutter: o.OrderByStutter}
}

// next returns the next model truncated to the encoder's variables, or
// ok == false when none is left.
func (e *enumerator) next(ctx context.Context) (model []int, ok bool, err error) {
	if e.done {
		return nil, false, nil
	}
	if !e.started {
		e.started = true
		if err = e.start(ctx); err != nil || e.done {
			return nil, false, err
		}
	}

	for {
		if err = ctx.Err(); err != nil {
			return nil, false, err
		}
		if e.solver.Solve() {
			if model, err = e.model(); err != nil {
				return nil, false, err
			}
			block := e.enc.Blocking(model)
			e.blocks = append(e.blocks, block)
			if err = e.solver.AddClause(block...); err != nil {
				return nil, false, err
			}

			return model, true, nil
		}
		// Relax the stutter bound; every earlier model stays blocked.
		if !e.stutter || e.bound >= len(e.lits) {
			e.done = true

			return nil, false, nil
		}
		if e.solver, err = e.bounded(e.bound + 1); err != nil {
			return nil, false, err
		}
	}
}

// start creates the first solver. With stutter ordering it also finds the
// smallest satisfiable non-stutter bound.
func (e *enumerator) start(ctx context.Context) error {
	e.clauses = e.enc.Clauses()
	s, err := e.fresh()
	if err != nil {
		return err
	}
	if err = sat.AddAll(s, e.clauses); err != nil {
		return err
	}
	e.solver = s
	if !e.stutter {
		return nil
	}

	e.lits = e.enc.NonStutterLits()
	if !s.Solve() {
		e.done = true

		return nil
	}
	m, err := e.model()
	if err != nil {
		return err
	}
	best := codec.CountTrue(m, e.lits)
	for best > 0 {
		if err = ctx.Err(); err != nil {
			return err
		}
		probe, err := e.bounded(best - 1)
		if err != nil {
			return err
		}
		if !probe.Solve() {
			break
		}
		pm, err := probe.Model()
		if err != nil {
			return err
		}
		best = codec.CountTrue(pm, e.lits)
	}
	e.solver, err = e.bounded(best)

	return err
}

// bounded returns a solver over the clauses, the blocking clauses so far and
// "at most bound non-stutter transitions".
func (e *enumerator) bounded(bound int) (sat.Solver, error) {
	e.bound = bound
	s, err := e.fresh()
	if err != nil {
		return nil, err
	}
	card, _ := codec.AtMost(e.lits, bound, e.enc.MaxID()+1)
	for _, cs := range [][][]int{e.clauses, card, e.blocks} {
		if err = sat.AddAll(s, cs); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (e *enumerator) fresh() (sat.Solver, error) {
	return sat.New(e.backend)
}

// model reads the solver's model and fits it to the encoder's variables.
func (e *enumerator) model() ([]int, error) {
	m, err := e.solver.Model()
	if err != nil {
		return nil, err
	}

	return fit(m, e.enc.MaxID()), nil
}

func fit(m []int, n int) []int {
	out := make([]int, n)
	for v := 1; v <= n; v++ {
		if v <= len(m) {
			out[v-1] = m[v-1]
		} else {
			out[v-1] = -v
		}
	}

	return out
}
