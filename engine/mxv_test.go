package engine_test

import (
	"testing"

	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/engine"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func TestMxvArithmeticSemiring(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 2}, {3, 4}}, 0)
	u := sparse.NewVectorFromDense([]int{1, 1}, 0)
	w := sparse.NewVector[int](2)

	engine.Mxv(w, core.NoMask{}, core.NoAccumulate{}, algebra.ArithmeticSemiring[int](), a, u, core.Replace)

	require.Equal(t, []int{3, 7}, sparse.ToDense(w, 0))
}

func TestVxmArithmeticSemiring(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 2}, {3, 4}}, 0)
	v := sparse.NewVectorFromDense([]int{1, 1}, 0)
	w := sparse.NewVector[int](2)

	engine.Vxm(w, core.NoMask{}, core.NoAccumulate{}, algebra.ArithmeticSemiring[int](), v, a, core.Replace)

	require.Equal(t, []int{4, 6}, sparse.ToDense(w, 0))
}

func TestVxmDropsIndexWithNoContributingRow(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{1, 1, 0}, 0)
	a := sparse.NewMatrixFromDense([][]int{{12, 0, 7}, {1, 0, 0}, {3, 6, 9}}, 0)
	w := sparse.NewVector[int](3)

	engine.Vxm(w, core.NoMask{}, core.NoAccumulate{}, algebra.ArithmeticSemiring[int](), u, a, core.Replace)

	require.Equal(t, []int{13, -1, 7}, sparse.ToDense(w, -1))
	require.Equal(t, 2, w.Nvals())
}

func TestMxvViaTransposeMatchesVxm(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 2}, {3, 4}}, 0)
	v := sparse.NewVectorFromDense([]int{1, 1}, 0)

	viaVxm := sparse.NewVector[int](2)
	engine.Vxm(viaVxm, core.NoMask{}, core.NoAccumulate{}, algebra.ArithmeticSemiring[int](), v, a, core.Replace)

	viaMxv := sparse.NewVector[int](2)
	engine.Mxv(viaMxv, core.NoMask{}, core.NoAccumulate{}, algebra.ArithmeticSemiring[int](), sparse.Transpose(a), v, core.Replace)

	require.Equal(t, sparse.ToDense(viaVxm, 0), sparse.ToDense(viaMxv, 0))
}
