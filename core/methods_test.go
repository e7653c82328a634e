package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/core"
)

// TestAddEdge_Symmetric verifies undirected mirroring and duplicate rejection.
func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 3))
	require.True(t, g.HasEdge(0, 3))
	require.True(t, g.HasEdge(3, 0))
	require.ErrorIs(t, g.AddEdge(3, 0), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge(0, 9), core.ErrVertexNotFound)
	require.Equal(t, 1, g.EdgeCount())
}

// TestEdges_Sorted locks in deterministic ordering.
func TestEdges_Sorted(t *testing.T) {
	g := core.NewGraph(5)
	for _, e := range [][2]int{{4, 1}, {0, 2}, {3, 0}, {1, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	want := []core.Edge{{U: 0, V: 2}, {U: 0, V: 3}, {U: 1, V: 2}, {U: 1, V: 4}}
	require.Equal(t, want, g.Edges())
}
