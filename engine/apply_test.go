package engine_test

import (
	"testing"

	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/engine"
	"github.com/amulmgr/graphblas/sparse"
	"github.com/stretchr/testify/require"
)

func TestApplyVectorUnaryOp(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{1, 0, 3}, 0)
	w := sparse.NewVector[int](3)
	double := algebra.NewUnaryOp("double", func(v int) int { return v * 2 })

	engine.ApplyVector(w, core.NoMask{}, core.NoAccumulate{}, double, u, core.Replace)

	require.Equal(t, []int{2, 0, 6}, sparse.ToDense(w, 0))
}

func TestApplyVectorIdentityPreservesStructure(t *testing.T) {
	u := sparse.NewVectorFromDense([]int{0, 5, 0}, 0)
	w := sparse.NewVector[int](3)

	engine.ApplyVector(w, core.NoMask{}, core.NoAccumulate{}, algebra.IdentityUnary[int](), u, core.Replace)

	require.Equal(t, 1, w.Nvals())
	require.True(t, w.HasElement(1))
}

func TestApplyMatrixUnaryOp(t *testing.T) {
	a := sparse.NewMatrixFromDense([][]int{{1, 0}, {0, 2}}, 0)
	w := sparse.NewMatrix[int](2, 2)
	negate := algebra.NewUnaryOp("negate", func(v int) int { return -v })

	engine.ApplyMatrix(w, core.NoMask{}, core.NoAccumulate{}, negate, a, core.Replace)

	require.Equal(t, [][]int{{-1, 0}, {0, -2}}, sparse.ToDenseMatrix(w, 0))
}
