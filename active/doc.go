// Package active grows an example set by querying an oracle until the
// smallest consistent automata agree, then hands the final set to package
// search.
//
// Query selection (DistinguishingQuery):
//
//  1. Take the smallest consistent automaton and the next one of a different
//     language from search.FindDFAs.
//  2. If both exist, ask for a shortest word of their symmetric difference.
//  3. Otherwise fall back to the first word, by length and then symbol order,
//     that is neither accepting nor rejecting yet.
//
// An Unknown verdict adds no constraint but still spends a query.
//
// FindDecomposition replaces the oracle with a reference automaton and learns
// a decomposition of it; every candidate drawn during the loop must agree
// with the examples collected so far, and a disagreement panics.
package active
