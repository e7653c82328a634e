// Package apta builds the Augmented Prefix Tree Acceptor (APTA) of a set of
// labeled example words: the minimal tree containing every prefix of every
// example, with accept/reject labels attached to the nodes the examples reach.
//
// The tree is an arena of dense node ids (0 is the root, the empty word); each
// node remembers its parent and arrival symbol, and the child map is keyed by
// (node, symbol), so a node has at most one outgoing edge per symbol.
//
// Alphabet resolution:
//
//   - Without WithAlphabet, the symbols observed in the examples form the
//     alphabet (sorted).
//   - With WithAlphabet(ab), every observed symbol must be a member of ab;
//     ab itself (which may hold unobserved symbols) is the alphabet.
//   - The empty (null) symbol is never permitted.
//
// Input contradictions are rejected before any tree node is created.
//
// Errors:
//
//   - ErrContradiction            a word is both accepting and rejecting.
//   - ErrSymbolOutsideAlphabet    a symbol is missing from the declared alphabet.
//   - alphabet.ErrNullSymbol      a word contains the empty symbol.
package apta
