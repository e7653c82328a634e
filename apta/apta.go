package apta

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dfaid/alphabet"
)

// childKey addresses the child map: one entry per (node, symbol).
type childKey struct {
	node   int
	symbol int
}

// APTA is an immutable augmented prefix tree acceptor.
type APTA struct {
	alphabet *alphabet.Alphabet

	parent []int   // parent[n], -1 for the root
	via    []int   // arrival symbol id, -1 for the root
	label  []Label // node labels
	child  map[childKey]int

	ordPrefs []Pair
	eqPrefs  []Pair
}

// FromExamples builds the APTA of accepting and rejecting words.
//
// Steps:
//  1. Reject words present in both sets (ErrContradiction).
//  2. Resolve the alphabet from observed symbols (and WithAlphabet).
//  3. Insert every example and preference word, creating nodes in insertion
//     order (ids are contiguous, root = 0).
//  4. Attach labels and record preference node pairs.
func FromExamples(accepting, rejecting []alphabet.Word, opts ...Option) (*APTA, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Contradictions
	pos := make(map[string]struct{}, len(accepting))
	for _, w := range accepting {
		pos[w.Key()] = struct{}{}
	}
	for _, w := range rejecting {
		if _, ok := pos[w.Key()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrContradiction, w.String())
		}
	}

	// 2) Alphabet
	all := make([]alphabet.Word, 0, len(accepting)+len(rejecting)+2*(len(o.OrderedPreferences)+len(o.EquivalentPreferences)))
	all = append(all, accepting...)
	all = append(all, rejecting...)
	for _, p := range o.OrderedPreferences {
		all = append(all, p.First, p.Second)
	}
	for _, p := range o.EquivalentPreferences {
		all = append(all, p.First, p.Second)
	}
	ab, err := resolveAlphabet(all, o.Alphabet)
	if err != nil {
		return nil, err
	}

	// 3) Tree
	t := &APTA{
		alphabet: ab,
		parent:   []int{-1},
		via:      []int{-1},
		label:    []Label{Unlabeled},
		child:    make(map[childKey]int),
	}
	for _, w := range all {
		t.insert(w)
	}

	// 4) Labels and preferences
	for _, w := range accepting {
		n, _ := t.Access(w)
		t.label[n] = Accept
	}
	for _, w := range rejecting {
		n, _ := t.Access(w)
		t.label[n] = Reject
	}
	t.ordPrefs = t.pairs(o.OrderedPreferences)
	t.eqPrefs = t.pairs(o.EquivalentPreferences)

	return t, nil
}

// resolveAlphabet collects observed symbols and checks them against declared.
func resolveAlphabet(words []alphabet.Word, declared *alphabet.Alphabet) (*alphabet.Alphabet, error) {
	seen := make(map[alphabet.Symbol]struct{})
	observed := make([]alphabet.Symbol, 0)
	for _, w := range words {
		for _, s := range w {
			if s == "" {
				return nil, alphabet.ErrNullSymbol
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			observed = append(observed, s)
		}
	}
	if declared == nil {
		return alphabet.New(observed...)
	}
	var missing []string
	for _, s := range observed {
		if !declared.Contains(s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: %q", ErrSymbolOutsideAlphabet, missing)
	}

	return declared, nil
}

// insert walks w from the root, creating missing nodes.
func (t *APTA) insert(w alphabet.Word) {
	n := Root
	for _, s := range w {
		a, _ := t.alphabet.ID(s)
		k := childKey{node: n, symbol: a}
		c, ok := t.child[k]
		if !ok {
			c = len(t.parent)
			t.parent = append(t.parent, n)
			t.via = append(t.via, a)
			t.label = append(t.label, Unlabeled)
			t.child[k] = c
		}
		n = c
	}
}

func (t *APTA) pairs(wps []WordPair) []Pair {
	out := make([]Pair, 0, len(wps))
	seen := make(map[Pair]struct{}, len(wps))
	for _, wp := range wps {
		a, _ := t.Access(wp.First)
		b, _ := t.Access(wp.Second)
		p := Pair{First: a, Second: b}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}

// Alphabet returns the resolved alphabet.
func (t *APTA) Alphabet() *alphabet.Alphabet { return t.alphabet }

// Size returns the number of nodes.
func (t *APTA) Size() int { return len(t.parent) }

// Label returns the label of node n.
func (t *APTA) Label(n int) Label { return t.label[n] }

// Parent returns the parent of n, or -1 for the root.
func (t *APTA) Parent(n int) int { return t.parent[n] }

// Symbol returns the arrival symbol id of n, or -1 for the root.
func (t *APTA) Symbol(n int) int { return t.via[n] }

// Child returns the child of n along symbol id a.
func (t *APTA) Child(n, a int) (int, bool) {
	c, ok := t.child[childKey{node: n, symbol: a}]

	return c, ok
}

// Children returns the children of n ordered by symbol id.
func (t *APTA) Children(n int) []Transition {
	var out []Transition
	for a := 0; a < t.alphabet.Size(); a++ {
		if c, ok := t.child[childKey{node: n, symbol: a}]; ok {
			out = append(out, Transition{Parent: n, Symbol: a, Child: c})
		}
	}

	return out
}

// Transitions returns every tree edge ordered by child id.
func (t *APTA) Transitions() []Transition {
	out := make([]Transition, 0, len(t.parent)-1)
	for c := 1; c < len(t.parent); c++ {
		out = append(out, Transition{Parent: t.parent[c], Symbol: t.via[c], Child: c})
	}

	return out
}

// Access returns the node reached by w, if w is in the tree.
func (t *APTA) Access(w alphabet.Word) (int, bool) {
	n := Root
	for _, s := range w {
		a, ok := t.alphabet.ID(s)
		if !ok {
			return 0, false
		}
		if n, ok = t.child[childKey{node: n, symbol: a}]; !ok {
			return 0, false
		}
	}

	return n, true
}

// Word returns the word spelled by the path from the root to n.
func (t *APTA) Word(n int) alphabet.Word {
	var ids []int
	for ; n != Root; n = t.parent[n] {
		ids = append(ids, t.via[n])
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return t.alphabet.Decode(ids)
}

// Accepting returns the ids of accepting nodes in ascending order.
func (t *APTA) Accepting() []int { return t.withLabel(Accept) }

// Rejecting returns the ids of rejecting nodes in ascending order.
func (t *APTA) Rejecting() []int { return t.withLabel(Reject) }

// Labeled returns the ids of all labeled nodes in ascending order.
func (t *APTA) Labeled() []int {
	var out []int
	for n, l := range t.label {
		if l != Unlabeled {
			out = append(out, n)
		}
	}

	return out
}

func (t *APTA) withLabel(l Label) []int {
	var out []int
	for n, nl := range t.label {
		if nl == l {
			out = append(out, n)
		}
	}

	return out
}

// OrderedPreferences returns (less preferred, more preferred) node pairs.
func (t *APTA) OrderedPreferences() []Pair { return append([]Pair(nil), t.ordPrefs...) }

// EquivalentPreferences returns equally preferred node pairs.
func (t *APTA) EquivalentPreferences() []Pair { return append([]Pair(nil), t.eqPrefs...) }
