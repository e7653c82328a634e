package dfa

import (
	"github.com/katalvlaran/dfaid/alphabet"
	"github.com/katalvlaran/dfaid/bfs"
)

// pair is a product state.
type pair struct{ l, r int }

// product builds the synchronous product of two complete automata over the
// pairs reachable from (start, start). op combines the accepting flags.
func product(x, y *DFA, op func(a, b bool) bool) (*DFA, error) {
	if !x.alphabet.Equal(y.alphabet) {
		return nil, ErrAlphabetMismatch
	}
	x, y = x.Complete(), y.Complete()
	k := x.alphabet.Size()

	next := func(p pair) []bfs.Arc[pair] {
		arcs := make([]bfs.Arc[pair], k)
		for a := 0; a < k; a++ {
			arcs[a] = bfs.Arc[pair]{Label: a, To: pair{x.delta[p.l][a], y.delta[p.r][a]}}
		}

		return arcs
	}
	res, err := bfs.BFS(pair{x.start, y.start}, next)
	if err != nil {
		return nil, err
	}

	// Number product states in BFS discovery order; the start becomes 0.
	ids := make(map[pair]int, len(res.Order))
	for i, p := range res.Order {
		ids[p] = i
	}
	accepting := make([]bool, len(res.Order))
	delta := make([][]int, len(res.Order))
	for i, p := range res.Order {
		accepting[i] = op(x.accepting[p.l], y.accepting[p.r])
		row := make([]int, k)
		for a := 0; a < k; a++ {
			row[a] = ids[pair{x.delta[p.l][a], y.delta[p.r][a]}]
		}
		delta[i] = row
	}

	return &DFA{alphabet: x.alphabet, start: 0, accepting: accepting, delta: delta}, nil
}

// And returns the intersection of d and o.
func (d *DFA) And(o *DFA) (*DFA, error) {
	return product(d, o, func(a, b bool) bool { return a && b })
}

// Or returns the union of d and o.
func (d *DFA) Or(o *DFA) (*DFA, error) {
	return product(d, o, func(a, b bool) bool { return a || b })
}

// Xor returns the symmetric difference of d and o.
func (d *DFA) Xor(o *DFA) (*DFA, error) {
	return product(d, o, func(a, b bool) bool { return a != b })
}

// Conjunction folds ds with And. It returns nil, ErrNoStates for no input.
func Conjunction(ds ...*DFA) (*DFA, error) {
	return fold(ds, (*DFA).And)
}

// Disjunction folds ds with Or. It returns nil, ErrNoStates for no input.
func Disjunction(ds ...*DFA) (*DFA, error) {
	return fold(ds, (*DFA).Or)
}

func fold(ds []*DFA, op func(*DFA, *DFA) (*DFA, error)) (*DFA, error) {
	if len(ds) == 0 {
		return nil, ErrNoStates
	}
	acc := ds[0]
	var err error
	for _, d := range ds[1:] {
		if acc, err = op(acc, d); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// FindWord returns a shortest word whose label equals label, breaking ties by
// symbol order. ok is false if no such word exists.
func (d *DFA) FindWord(label bool) (w alphabet.Word, ok bool) {
	c := d.Complete()
	k := c.alphabet.Size()
	next := func(s int) []bfs.Arc[int] {
		arcs := make([]bfs.Arc[int], k)
		for a := 0; a < k; a++ {
			arcs[a] = bfs.Arc[int]{Label: a, To: c.delta[s][a]}
		}

		return arcs
	}
	res, err := bfs.BFS(c.start, next, bfs.WithGoal(func(s int) bool { return c.accepting[s] == label }))
	if err != nil || !res.Found {
		return nil, false
	}
	ids, err := res.LabelsTo(res.Goal)
	if err != nil {
		return nil, false
	}

	return c.alphabet.Decode(ids), true
}

// IsEmpty reports whether d accepts no word.
func (d *DFA) IsEmpty() bool {
	_, ok := d.FindWord(true)

	return !ok
}

// Equal reports language equivalence of d and o.
func (d *DFA) Equal(o *DFA) (bool, error) {
	x, err := d.Xor(o)
	if err != nil {
		return false, err
	}

	return x.IsEmpty(), nil
}

// Distinguish returns a shortest word on which d and o disagree.
func (d *DFA) Distinguish(o *DFA) (alphabet.Word, bool, error) {
	x, err := d.Xor(o)
	if err != nil {
		return nil, false, err
	}
	w, ok := x.FindWord(true)

	return w, ok, nil
}

// Reachable returns the number of states reachable from the start.
func (d *DFA) Reachable() int {
	k := d.alphabet.Size()
	next := func(s int) []bfs.Arc[int] {
		var arcs []bfs.Arc[int]
		for a := 0; a < k; a++ {
			if t := d.delta[s][a]; t != None {
				arcs = append(arcs, bfs.Arc[int]{Label: a, To: t})
			}
		}

		return arcs
	}
	res, _ := bfs.BFS(d.start, next)

	return len(res.Order)
}
