// Package dfa is the table-driven automaton runtime used by dfaid: decoded SAT
// models become *DFA values, and the active learner combines and compares them.
//
// A DFA has states 0..States()-1, a start state, an accepting flag per state
// and a transition table indexed by (state, symbol id). Missing transitions
// (-1) are allowed; they lead to an implicit rejecting sink, so every word
// still has a label.
//
// Key features:
//   - New / FromSpec: build and validate an automaton.
//   - Label(w): acceptance test.
//   - And / Or / Xor: synchronous products over the reachable pairs.
//   - Complement, Complete.
//   - FindWord(label): a shortest word with the given label (BFS).
//   - IsEmpty / Equal: language emptiness and language equivalence; equality
//     is never structural.
//   - Conjunction / Disjunction: fold several automata.
//   - Stutters / NonStutterTransitions: self-loop statistics used to rank
//     otherwise equal-size hypotheses.
//
// Errors:
//
//   - ErrNoStates, ErrBadStart, ErrTableShape, ErrBadTransition from construction.
//   - ErrAlphabetMismatch when combining automata over different alphabets.
//   - alphabet.ErrUnknownSymbol when labeling a word with a foreign symbol.
package dfa
