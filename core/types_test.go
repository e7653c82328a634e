// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction, edge insertion and
// deterministic enumeration.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dfaid/core"
)

// TestGraph_Loops asserts self-loops are rejected.
func TestGraph_Loops(t *testing.T) {
	g := core.NewGraph(2)
	require.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	require.Equal(t, 0, g.EdgeCount())
}

// TestGraph_Vertices covers dense ids and range checks.
func TestGraph_Vertices(t *testing.T) {
	require.Equal(t, 0, core.NewGraph(-3).VertexCount())

	g := core.NewGraph(2)
	require.Equal(t, 2, g.VertexCount())
	require.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexNotFound)
	require.False(t, g.HasEdge(0, 7))
}
