package apta

import (
	"errors"

	"github.com/katalvlaran/dfaid/alphabet"
)

// Sentinel errors for APTA construction.
var (
	// ErrContradiction indicates a word listed as both accepting and rejecting.
	ErrContradiction = errors.New("apta: word is both accepting and rejecting")

	// ErrSymbolOutsideAlphabet indicates an example symbol outside the declared alphabet.
	ErrSymbolOutsideAlphabet = errors.New("apta: symbol outside declared alphabet")
)

// Root is the id of the empty-word node.
const Root = 0

// Label is the tri-state node label.
type Label int8

const (
	// Unlabeled nodes are don't-cares.
	Unlabeled Label = iota
	// Accept marks a node reached by an accepting example.
	Accept
	// Reject marks a node reached by a rejecting example.
	Reject
)

// String implements fmt.Stringer.
func (l Label) String() string {
	switch l {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unlabeled"
	}
}

// Conflicts reports whether l and o are both set and differ.
func (l Label) Conflicts(o Label) bool {
	return l != Unlabeled && o != Unlabeled && l != o
}

// Pair is an ordered pair of node ids (e.g. a preference).
type Pair struct {
	First  int
	Second int
}

// WordPair is an ordered pair of words.
type WordPair struct {
	First  alphabet.Word
	Second alphabet.Word
}

// Transition is a tree edge Parent --Symbol--> Child.
type Transition struct {
	Parent int
	Symbol int
	Child  int
}

// Option configures FromExamples.
type Option func(*Options)

// Options holds the optional inputs of FromExamples.
type Options struct {
	// Alphabet, if non-nil, is the predeclared alphabet.
	Alphabet *alphabet.Alphabet

	// OrderedPreferences holds (less preferred, more preferred) word pairs.
	OrderedPreferences []WordPair

	// EquivalentPreferences holds pairs of equally preferred words.
	EquivalentPreferences []WordPair
}

// WithAlphabet predeclares the alphabet.
func WithAlphabet(ab *alphabet.Alphabet) Option {
	return func(o *Options) { o.Alphabet = ab }
}

// WithOrderedPreferences records (less preferred, more preferred) pairs.
func WithOrderedPreferences(pairs ...WordPair) Option {
	return func(o *Options) { o.OrderedPreferences = append(o.OrderedPreferences, pairs...) }
}

// WithEquivalentPreferences records equally preferred word pairs.
func WithEquivalentPreferences(pairs ...WordPair) Option {
	return func(o *Options) { o.EquivalentPreferences = append(o.EquivalentPreferences, pairs...) }
}
