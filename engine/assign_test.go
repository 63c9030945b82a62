package engine_test

import (
	"testing"

	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/engine"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func TestAssignConstantVectorAllIndices(t *testing.T) {
	w := sparse.NewVector[int](4)
	engine.AssignConstantVector(w, core.NoMask{}, core.NoAccumulate{}, 9, engine.AllIndices(), core.Replace)
	require.Equal(t, []int{9, 9, 9, 9}, sparse.ToDense(w, 0))
}

func TestAssignConstantVectorExplicitIndices(t *testing.T) {
	w := sparse.NewVector[int](4)
	engine.AssignConstantVector(w, core.NoMask{}, core.NoAccumulate{}, 9, engine.Indices(0, 2), core.Replace)
	require.Equal(t, []int{9, 0, 9, 0}, sparse.ToDense(w, 0))
}

func TestAssignConstantVectorMaskedUnderComplement(t *testing.T) {
	w := sparse.NewVector[int](4)
	isolated := sparse.NewVectorFromDense([]bool{false, true, false, false}, false)

	engine.AssignConstantVector(w, sparse.Complement(isolated), core.NoAccumulate{}, 1, engine.AllIndices(), core.Replace)

	require.Equal(t, []int{1, 0, 1, 1}, sparse.ToDense(w, 0))
}

func TestAssignVectorFromSource(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{5, 6}, 0)
	w := sparse.NewVector[int](4)

	engine.AssignVector(w, core.NoMask{}, core.NoAccumulate{}, u, engine.Indices(1, 3), core.Replace)

	require.Equal(t, []int{0, 5, 0, 6}, sparse.ToDense(w, 0))
}

func TestAssignConstantMatrix(t *testing.T) {
	w := sparse.NewMatrix[int](2, 2)
	engine.AssignConstantMatrix(w, core.NoMask{}, core.NoAccumulate{}, 3, engine.AllIndices(), engine.AllIndices(), core.Replace)
	require.Equal(t, [][]int{{3, 3}, {3, 3}}, sparse.ToDenseMatrix(w, 0))
}
