package dfa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dfaid/alphabet"
)

// Sentinel errors for automaton construction and combination.
var (
	// ErrNoStates indicates an automaton without states.
	ErrNoStates = errors.New("dfa: automaton has no states")

	// ErrBadStart indicates the start state is out of range.
	ErrBadStart = errors.New("dfa: start state out of range")

	// ErrTableShape indicates the transition table does not match states × |Σ|.
	ErrTableShape = errors.New("dfa: transition table shape mismatch")

	// ErrBadTransition indicates a transition target out of range.
	ErrBadTransition = errors.New("dfa: transition target out of range")

	// ErrAlphabetMismatch indicates two automata over different alphabets.
	ErrAlphabetMismatch = errors.New("dfa: alphabet mismatch")
)

// None marks an undefined transition.
const None = -1

// DFA is an immutable deterministic finite automaton.
type DFA struct {
	alphabet  *alphabet.Alphabet
	start     int
	accepting []bool
	delta     [][]int // delta[state][symbol] or None
}

// New validates and builds a DFA. The slices are copied.
func New(ab *alphabet.Alphabet, start int, accepting []bool, delta [][]int) (*DFA, error) {
	n := len(accepting)
	if n == 0 {
		return nil, ErrNoStates
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrBadStart, start)
	}
	if len(delta) != n {
		return nil, fmt.Errorf("%w: %d rows for %d states", ErrTableShape, len(delta), n)
	}

	d := &DFA{
		alphabet:  ab,
		start:     start,
		accepting: append([]bool(nil), accepting...),
		delta:     make([][]int, n),
	}
	for s, row := range delta {
		if len(row) != ab.Size() {
			return nil, fmt.Errorf("%w: state %d has %d columns, |Σ|=%d", ErrTableShape, s, len(row), ab.Size())
		}
		for a, t := range row {
			if t != None && (t < 0 || t >= n) {
				return nil, fmt.Errorf("%w: δ(%d,%s)=%d", ErrBadTransition, s, ab.Symbol(a), t)
			}
		}
		d.delta[s] = append([]int(nil), row...)
	}

	return d, nil
}

// Spec describes one state for FromSpec.
type Spec struct {
	Accepting bool
	Next      map[alphabet.Symbol]int
}

// FromSpec builds a DFA from per-state specs; absent symbols are undefined.
func FromSpec(ab *alphabet.Alphabet, start int, states []Spec) (*DFA, error) {
	accepting := make([]bool, len(states))
	delta := make([][]int, len(states))
	for s, spec := range states {
		accepting[s] = spec.Accepting
		row := make([]int, ab.Size())
		for a := range row {
			row[a] = None
		}
		for sym, t := range spec.Next {
			a, ok := ab.ID(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q", alphabet.ErrUnknownSymbol, sym)
			}
			row[a] = t
		}
		delta[s] = row
	}

	return New(ab, start, accepting, delta)
}

// Alphabet returns the automaton's alphabet.
func (d *DFA) Alphabet() *alphabet.Alphabet { return d.alphabet }

// Start returns the start state.
func (d *DFA) Start() int { return d.start }

// States returns the number of states.
func (d *DFA) States() int { return len(d.accepting) }

// IsAccepting reports whether state s is accepting.
func (d *DFA) IsAccepting(s int) bool { return d.accepting[s] }

// Next returns δ(s, a) for symbol id a; ok is false for an undefined transition.
func (d *DFA) Next(s, a int) (int, bool) {
	t := d.delta[s][a]

	return t, t != None
}

// Run follows w from the start state. ok is false if an undefined transition
// was hit (the word falls into the implicit sink).
func (d *DFA) Run(w alphabet.Word) (state int, ok bool, err error) {
	ids, err := d.alphabet.Encode(w)
	if err != nil {
		return 0, false, err
	}
	s := d.start
	for _, a := range ids {
		if s = d.delta[s][a]; s == None {
			return 0, false, nil
		}
	}

	return s, true, nil
}

// Label reports whether d accepts w.
func (d *DFA) Label(w alphabet.Word) (bool, error) {
	s, ok, err := d.Run(w)
	if err != nil || !ok {
		return false, err
	}

	return d.accepting[s], nil
}

// Transitions returns the number of defined transitions.
func (d *DFA) Transitions() int {
	n := 0
	for _, row := range d.delta {
		for _, t := range row {
			if t != None {
				n++
			}
		}
	}

	return n
}

// Stutters returns the number of self-loop transitions.
func (d *DFA) Stutters() int {
	n := 0
	for s, row := range d.delta {
		for _, t := range row {
			if t == s {
				n++
			}
		}
	}

	return n
}

// NonStutterTransitions returns Transitions() - Stutters(), the "#edges"
// component of the (#states, #edges) hypothesis order.
func (d *DFA) NonStutterTransitions() int { return d.Transitions() - d.Stutters() }

// Complete returns d if every transition is defined, otherwise a copy with an
// explicit rejecting sink appended as the last state.
func (d *DFA) Complete() *DFA {
	if d.Transitions() == d.States()*d.alphabet.Size() {
		return d
	}
	sink := d.States()
	out := &DFA{
		alphabet:  d.alphabet,
		start:     d.start,
		accepting: append(append([]bool(nil), d.accepting...), false),
		delta:     make([][]int, sink+1),
	}
	for s := 0; s <= sink; s++ {
		row := make([]int, d.alphabet.Size())
		for a := range row {
			row[a] = sink
			if s < sink && d.delta[s][a] != None {
				row[a] = d.delta[s][a]
			}
		}
		out.delta[s] = row
	}

	return out
}

// Complement returns an automaton accepting exactly the words d rejects.
func (d *DFA) Complement() *DFA {
	c := d.Complete()
	out := &DFA{
		alphabet:  c.alphabet,
		start:     c.start,
		accepting: make([]bool, len(c.accepting)),
		delta:     c.delta, // immutable, safe to share
	}
	for s, acc := range c.accepting {
		out.accepting[s] = !acc
	}

	return out
}

// String renders the transition table, one state per line:
//
//	→0  a:1 b:0
//	*1  a:1 b:1
//
// "→" marks the start state and "*" accepting states.
func (d *DFA) String() string {
	var sb strings.Builder
	for s := range d.accepting {
		switch {
		case s == d.start && d.accepting[s]:
			sb.WriteString("→*")
		case s == d.start:
			sb.WriteString("→ ")
		case d.accepting[s]:
			sb.WriteString(" *")
		default:
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%d ", s)
		for a, t := range d.delta[s] {
			if t == None {
				continue
			}
			fmt.Fprintf(&sb, " %s:%d", d.alphabet.Symbol(a), t)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
