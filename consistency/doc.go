// Package consistency computes the consistency graph of an APTA: an
// undirected graph over APTA node ids with an edge (u,v) whenever merging u
// and v into one automaton state is provably impossible.
//
// For every unordered pair the builder runs a depth-first refutation search
// over pairs of tree nodes:
//
//  1. A pair already joined by a graph edge is refuted (memoized edges).
//  2. A pair whose nodes carry different labels is refuted.
//  3. Otherwise children are grouped by arrival symbol; a symbol present on
//     both sides yields a successor pair, a symbol present on one side only
//     is a don't-care.
//  4. The original pair stays identified during the whole search: any
//     successor group containing one original node also yields the group with
//     that node replaced by the other one.
//
// If the search is exhausted without a refutation, no edge is added. The
// absence of an edge does not prove mergeability; the graph is a pruning
// oracle for the SAT codec.
//
// Complexity: O(n²) pairs, each searched in O(n·|Σ|) pairs in the worst case.
package consistency
