package engine_test

import (
	"testing"

	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/engine"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func TestReduceRowFold(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 2, 0}, {0, 3, 4}}, 0)
	w := sparse.NewVector[int](2)

	engine.Reduce(w, core.NoMask{}, core.NoAccumulate{}, algebra.Plus[int](), a, core.Replace)

	require.Equal(t, []int{3, 7}, sparse.ToDense(w, 0))
}

func TestReduceSkipsEmptyRows(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{0, 0}, {5, 0}}, 0)
	w := sparse.NewVector[int](2)

	engine.Reduce(w, core.NoMask{}, core.NoAccumulate{}, algebra.Plus[int](), a, core.Replace)

	require.False(t, w.HasElement(0))
	val, err := w.ExtractElement(1)
	require.NoError(t, err)
	require.Equal(t, 5, val)
}

func TestReduceToScalarWithIdentitySeed(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{1, 0, 2, 4}, 0)
	got := engine.ReduceToScalar(0, core.NoAccumulate{}, algebra.PlusMonoid[int](), u)
	require.Equal(t, 7, got)
}

func TestReduceToScalarAccumulatesOntoPrior(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{1, 0, 2, 4}, 0)
	got := engine.ReduceToScalar(10, algebra.Plus[int](), algebra.PlusMonoid[int](), u)
	require.Equal(t, 17, got)
}

func TestReduceMatrixToScalar(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 2}, {3, 4}}, 0)
	got := engine.ReduceMatrixToScalar(0, core.NoAccumulate{}, algebra.PlusMonoid[int](), a)
	require.Equal(t, 10, got)
}
