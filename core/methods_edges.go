// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending.
// Concurrency:
//   - Mutations under g.mu write lock; queries under read lock.
// AI-HINT (file):
//   - Edges are undirected; HasEdge(u,v) == HasEdge(v,u).
//   - Adding an existing edge returns ErrMultiEdgeNotAllowed; callers that only
//     want "ensure present" semantics should check HasEdge first.

package core

import "sort"

// AddEdge inserts the undirected edge {u, v}.
//
// Steps:
//  1. Validate both endpoints (ErrVertexNotFound).
//  2. Reject loops (ErrLoopNotAllowed).
//  3. Reject duplicates (ErrMultiEdgeNotAllowed).
//  4. Link both adjacency sets.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Input validation
	if !g.hasVertex(u) || !g.hasVertex(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if _, ok := g.adj[u][v]; ok {
		return ErrMultiEdgeNotAllowed
	}

	// 2) Link and mirror
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether {u, v} is present. Out-of-range ids report false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(u) || !g.hasVertex(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, normalized (U <= V) and sorted by (U, V).
//
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var u, v int
	for u = range g.adj {
		for v = range g.adj[u] {
			if u <= v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
