package algorithms_test

import (
	"testing"

	"github.com/amulmgr/graphblas/algorithms"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func clique(n core.Index) *sparse.Matrix[float64] {
	g := sparse.NewMatrix[float64](n, n)
	for i := core.Index(0); i < n; i++ {
		for j := core.Index(0); j < n; j++ {
			if i != j {
				_ = g.SetElement(i, j, 1)
			}
		}
	}
	return g
}

func isIndependent(t *testing.T, g *sparse.Matrix[float64], set *sparse.Vector[bool]) {
	t.Helper()
	ids := algorithms.VertexIDs(set)
	for _, i := range ids {
		for _, j := range ids {
			if i == j {
				continue
			}
			require.False(t, g.HasElement(i, j), "vertices %d and %d are both selected but adjacent", i, j)
		}
	}
}

func isMaximal(t *testing.T, g *sparse.Matrix[float64], set *sparse.Vector[bool]) {
	t.Helper()
	n := g.NRows()
	for v := core.Index(0); v < n; v++ {
		if set.HasElement(v) {
			continue
		}
		val, err := set.ExtractElement(v)
		if err == nil && val {
			continue
		}
		adjacentToMember := false
		for _, e := range g.GetRow(v) {
			if inSet, err := set.ExtractElement(e.Index); err == nil && inSet {
				adjacentToMember = true
				break
			}
		}
		require.True(t, adjacentToMember, "vertex %d is neither selected nor adjacent to a selected vertex", v)
	}
}

func TestMaximalIndependentSetOnCliqueHasSizeOne(t *testing.T) {
	g := clique(5)
	set, err := algorithms.MaximalIndependentSet(g, 42)
	require.NoError(t, err)
	require.Len(t, algorithms.VertexIDs(set), 1)
	isIndependent(t, g, set)
	isMaximal(t, g, set)
}

func TestMaximalIndependentSetOnIsolatedVerticesSelectsAll(t *testing.T) {
	g := sparse.NewMatrix[float64](3, 3)
	set, err := algorithms.MaximalIndependentSet(g, 7)
	require.NoError(t, err)
	require.ElementsMatch(t, []core.Index{0, 1, 2}, algorithms.VertexIDs(set))
}

func TestMaximalIndependentSetOnDisjointEdges(t *testing.T) {
	g := sparse.NewMatrix[float64](4, 4)
	_ = g.SetElement(0, 1, 1)
	_ = g.SetElement(1, 0, 1)
	_ = g.SetElement(2, 3, 1)
	_ = g.SetElement(3, 2, 1)

	set, err := algorithms.MaximalIndependentSet(g, 99)
	require.NoError(t, err)
	require.Len(t, algorithms.VertexIDs(set), 2)
	isIndependent(t, g, set)
	isMaximal(t, g, set)
}

func TestMaximalIndependentSetRejectsNonSquareGraph(t *testing.T) {
	g := sparse.NewMatrix[float64](2, 3)
	_, err := algorithms.MaximalIndependentSet(g, 1)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestVertexIDsFiltersFalseEntries(t *testing.T) {
	v := sparse.NewVector[bool](3)
	_ = v.SetElement(0, true)
	_ = v.SetElement(1, false)
	require.Equal(t, []core.Index{0}, algorithms.VertexIDs(v))
}
