// Copyright 2024 The fibksp Authors.
// License MIT: http://opensource.org/licenses/MIT

package fibksp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGraphAllVerticesUsable(t *testing.T) {
	g := NewGraph[string](4)
	require.Equal(t, 4, g.Order())
	for i := 0; i < 4; i++ {
		require.True(t, g.isUsable(VertexID(i)))
	}
}

func TestNewGraphNegativeSizePanics(t *testing.T) {
	require.Panics(t, func() { NewGraph[string](-1) })
}

func TestAddArcRejectsNegativeWeight(t *testing.T) {
	g := NewGraph[string](2)
	_, err := g.AddArc(0, 1, -1, "")
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestAddArcRejectsOutOfRangeVertex(t *testing.T) {
	g := NewGraph[string](2)
	_, err := g.AddArc(0, 7, 1, "")
	require.ErrorIs(t, err, ErrVertexRange)

	_, err = g.AddArc(-1, 0, 1, "")
	require.ErrorIs(t, err, ErrVertexRange)
}

func TestAddArcAllowsParallelArcs(t *testing.T) {
	g := NewGraph[string](2)
	a1, err := g.AddArc(0, 1, 10, "")
	require.NoError(t, err)
	a2, err := g.AddArc(0, 1, 3, "")
	require.NoError(t, err)
	require.NotSame(t, a1, a2)

	var count int
	for a := g.vertices[0].firstArc; a != nil; a = a.next {
		count++
	}
	require.Equal(t, 2, count)
}

func TestRemoveArcAndRestore(t *testing.T) {
	g := NewGraph[string](2)
	a, _ := g.AddArc(0, 1, 5, "")

	g.RemoveArc(a)
	require.True(t, math.IsInf(a.Weight, 1))

	g.RestoreRemovals()
	require.Equal(t, 5.0, a.Weight)
	require.Empty(t, g.removals)
}

func TestSetUsable(t *testing.T) {
	g := NewGraph[string](2)
	g.setUsable(0, false)
	require.False(t, g.isUsable(0))
	g.setUsable(0, true)
	require.True(t, g.isUsable(0))
}
