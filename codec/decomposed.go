package codec

import (
	"fmt"

	"github.com/katalvlaran/dfaid/apta"
	"github.com/katalvlaran/dfaid/dfa"
	"github.com/katalvlaran/dfaid/sat"
)

// Mode selects how component automata combine.
type Mode string

const (
	// Conjunction accepts a word iff every component accepts it.
	Conjunction Mode = "conjunction"
	// Disjunction accepts a word iff some component accepts it.
	Disjunction Mode = "disjunction"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Conjunction || m == Disjunction }

// Combine folds ds according to m.
func (m Mode) Combine(ds ...*dfa.DFA) (*dfa.DFA, error) {
	switch m {
	case Conjunction:
		return dfa.Conjunction(ds...)
	case Disjunction:
		return dfa.Disjunction(ds...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrMode, string(m))
	}
}

// Decomposed encodes n independently colored components whose combination
// reproduces the APTA labels.
type Decomposed struct {
	tree       *apta.APTA
	mode       Mode
	components []*Codec
	relevant   []int       // labeled and preference nodes
	index      map[int]int // node -> position in relevant
	base       int         // last component variable
}

// NewDecomposed returns a decomposition codec with one component per entry of
// sizes. Sizes must be non-decreasing; the search driver asks for strictly
// increasing tuples.
func NewDecomposed(t *apta.APTA, sizes []int, mode Mode) (*Decomposed, error) {
	if len(sizes) == 0 {
		return nil, ErrComponents
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrMode, string(mode))
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] < sizes[i-1] {
			return nil, fmt.Errorf("%w: %v", ErrSizeOrder, sizes)
		}
	}

	d := &Decomposed{tree: t, mode: mode, index: make(map[int]int)}
	off := 0
	for _, k := range sizes {
		c, err := New(t, nil, k, WithOffset(off), WithoutLabels())
		if err != nil {
			return nil, err
		}
		d.components = append(d.components, c)
		off = c.MaxID()
	}
	d.base = off

	mark := func(v int) {
		if _, ok := d.index[v]; !ok {
			d.index[v] = len(d.relevant)
			d.relevant = append(d.relevant, v)
		}
	}
	for _, v := range t.Labeled() {
		mark(v)
	}
	for _, p := range append(t.OrderedPreferences(), t.EquivalentPreferences()...) {
		mark(p.First)
		mark(p.Second)
	}

	return d, nil
}

// Mode returns the combination mode.
func (d *Decomposed) Mode() Mode { return d.mode }

// Components returns the component codecs in size order.
func (d *Decomposed) Components() []*Codec {
	return append([]*Codec(nil), d.components...)
}

// Sizes returns the component color counts.
func (d *Decomposed) Sizes() []int {
	out := make([]int, len(d.components))
	for i, c := range d.components {
		out[i] = c.Colors()
	}

	return out
}

// NodeAcc returns the variable "component c accepts node v". v must be a
// labeled or preference node.
func (d *Decomposed) NodeAcc(c, v int) int {
	return d.base + d.index[v]*len(d.components) + c + 1
}

// Combined returns the variable "the combination accepts node v".
func (d *Decomposed) Combined(v int) int {
	return d.base + len(d.relevant)*len(d.components) + d.index[v] + 1
}

// MaxID returns the largest variable id.
func (d *Decomposed) MaxID() int {
	return d.base + len(d.relevant)*(len(d.components)+1)
}

// Clauses returns the component encodings followed by the aggregator.
func (d *Decomposed) Clauses() [][]int {
	var cs [][]int
	for _, c := range d.components {
		cs = append(cs, c.Clauses()...)
	}

	n := len(d.components)
	for _, v := range d.relevant {
		// 1) NodeAcc(c,v) <-> z_c(color_c(v)).
		for ci, c := range d.components {
			acc := d.NodeAcc(ci, v)
			for i := 0; i < c.Colors(); i++ {
				cs = append(cs,
					[]int{-c.Color(v, i), -c.Acc(i), acc},
					[]int{-c.Color(v, i), c.Acc(i), -acc},
				)
			}
		}

		// 2) Combined(v) <-> AND / OR of NodeAcc(·,v).
		comb := d.Combined(v)
		long := make([]int, 0, n+1)
		switch d.mode {
		case Conjunction:
			long = append(long, comb)
			for ci := 0; ci < n; ci++ {
				cs = append(cs, []int{-comb, d.NodeAcc(ci, v)})
				long = append(long, -d.NodeAcc(ci, v))
			}
		case Disjunction:
			long = append(long, -comb)
			for ci := 0; ci < n; ci++ {
				cs = append(cs, []int{comb, -d.NodeAcc(ci, v)})
				long = append(long, d.NodeAcc(ci, v))
			}
		}
		cs = append(cs, long)

		// 3) Labels.
		switch d.tree.Label(v) {
		case apta.Accept:
			cs = append(cs, []int{comb})
		case apta.Reject:
			cs = append(cs, []int{-comb})
		}
	}

	// 4) Preferences on the combined acceptance.
	for _, p := range d.tree.OrderedPreferences() {
		cs = append(cs, []int{-d.Combined(p.First), d.Combined(p.Second)})
	}
	for _, p := range d.tree.EquivalentPreferences() {
		cs = append(cs,
			[]int{-d.Combined(p.First), d.Combined(p.Second)},
			[]int{d.Combined(p.First), -d.Combined(p.Second)},
		)
	}

	return cs
}

// Blocking excludes the tuple of component automata encoded by model.
func (d *Decomposed) Blocking(model []int) []int {
	var vars []int
	for _, c := range d.components {
		vars = append(vars, c.tableVars()...)
	}

	return sat.Blocking(model, vars)
}

// NonStutterLits concatenates the components' non-stutter literals.
func (d *Decomposed) NonStutterLits() []int {
	var lits []int
	for _, c := range d.components {
		lits = append(lits, c.NonStutterLits()...)
	}

	return lits
}

// Decode returns the component automata in size order. Only the component
// variable ranges of model are read. It panics if the combination disagrees
// with a labeled example.
func (d *Decomposed) Decode(model []int) ([]*dfa.DFA, error) {
	out := make([]*dfa.DFA, len(d.components))
	for i, c := range d.components {
		m, err := c.Decode(model)
		if err != nil {
			return nil, fmt.Errorf("codec: component %d: %w", i, err)
		}
		out[i] = m
	}

	for _, v := range d.tree.Labeled() {
		w := d.tree.Word(v)
		got := d.mode == Conjunction
		for _, m := range out {
			l, err := m.Label(w)
			if err != nil {
				return nil, err
			}
			if d.mode == Conjunction {
				got = got && l
			} else {
				got = got || l
			}
		}
		if got != (d.tree.Label(v) == apta.Accept) {
			panic(fmt.Sprintf("codec: %s of components mislabels %q", d.mode, w.String()))
		}
	}

	return out, nil
}
