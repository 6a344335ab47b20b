package graphalgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_OutOfRange(t *testing.T) {
	g := New[float64](2)
	_, err := g.AddEdge(0, 5, 1, "x", 1)
	require.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g := New[float64](2)
	_, err := g.AddEdge(0, 1, -1, "x", 1)
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestAddEdge_IDsAreInsertionOrder(t *testing.T) {
	g := New[float64](3)
	id0, err := g.AddEdge(0, 1, 1, "a", 1)
	require.NoError(t, err)
	id1, err := g.AddEdge(1, 2, 1, "b", 1)
	require.NoError(t, err)
	assert.Equal(t, EdgeID(0), id0)
	assert.Equal(t, EdgeID(1), id1)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildRoute_SimplePath(t *testing.T) {
	g := New[float64](3)
	_, err := g.AddEdge(0, 1, 5, "a", 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 3, "b", 1)
	require.NoError(t, err)

	s := NewSolver(g)
	route, ok := s.BuildRoute(0, 2)
	require.True(t, ok)
	assert.InDelta(t, 8, route.TotalWeight, 1e-9)
	assert.Equal(t, []EdgeID{0, 1}, route.EdgeIDs)
}

func TestBuildRoute_PicksCheapestPath(t *testing.T) {
	g := New[float64](3)
	_, _ = g.AddEdge(0, 1, 10, "direct-ish", 1)
	_, _ = g.AddEdge(0, 2, 1, "viaC-leg1", 1)
	_, _ = g.AddEdge(2, 1, 1, "viaC-leg2", 1)

	s := NewSolver(g)
	route, ok := s.BuildRoute(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 2, route.TotalWeight, 1e-9)
	assert.Equal(t, []EdgeID{1, 2}, route.EdgeIDs)
}

func TestBuildRoute_Unreachable(t *testing.T) {
	g := New[float64](2)
	s := NewSolver(g)
	_, ok := s.BuildRoute(0, 1)
	assert.False(t, ok)
}

func TestBuildRoute_TieBrokenByEdgeInsertionOrder(t *testing.T) {
	g := New[float64](2)
	first, _ := g.AddEdge(0, 1, 5, "first", 1)
	_, _ = g.AddEdge(0, 1, 5, "second", 1)

	s := NewSolver(g)
	route, ok := s.BuildRoute(0, 1)
	require.True(t, ok)
	assert.Equal(t, []EdgeID{first}, route.EdgeIDs)
}

func TestMonotonicity_AddingEdgeNeverWorsens(t *testing.T) {
	g := New[float64](3)
	_, _ = g.AddEdge(0, 1, 10, "a", 1)
	before, ok := NewSolver(g).BuildRoute(0, 1)
	require.True(t, ok)

	_, _ = g.AddEdge(0, 1, 2, "shortcut", 1)
	after, ok := NewSolver(g).BuildRoute(0, 1)
	require.True(t, ok)

	assert.LessOrEqual(t, after.TotalWeight, before.TotalWeight)
}
