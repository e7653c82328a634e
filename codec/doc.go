// Package codec translates "a k-state DFA consistent with this APTA exists"
// into CNF and satisfying models back into automata.
//
// Monolithic encoding (Heule & Verwer) over n tree nodes, k colors and an
// alphabet of size s:
//
//	x(v,i)    node v has color i                  n·k variables
//	y(a,i,j)  color i on symbol a goes to color j  s·k·k variables
//	z(i)      color i is accepting                k variables
//
// Clauses:
//
//  1. The root has color 0.
//  2. Every node has exactly one color.
//  3. Accepting nodes sit on accepting colors, rejecting nodes on rejecting ones.
//  4. Nodes joined by a consistency-graph edge get different colors.
//  5. A tree transition (p,a,c) forces y(a,color(p),color(c)).
//  6. y is a total function of (a,i).
//  7. x(p,i) ∧ y(a,i,j) → x(c,j) for every tree transition.
//  8. Preferences: an ordered pair (less, more) forbids accepting less while
//     rejecting more; an equivalent pair forces equal acceptance.
//
// Variables are numbered from Offset()+1, so codecs can be stacked: a
// Decomposed codec places component c after the variables of components
// 0..c-1 and its own auxiliary variables after all components.
//
// Decomposition modes:
//
//   - Conjunction: a word is accepted iff every component accepts it.
//   - Disjunction: a word is accepted iff some component accepts it.
//
// Decode panics when a model violates an encoded invariant (a node without a
// unique color, a transition that is not a function, a label on the wrong
// color): such a model can only come from a codec or solver defect.
package codec
