package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// Mxv computes w = A * u over semiring sr, row at a time: w[i] is the
// Add-reduction of Mul(A[i][k], u[k]) over every k stored in both A's row
// i and u. Taking A through sparse.MatrixLike also covers the transposed
// "Aᵀ * u" variant without a separate code path.
func Mxv[D1, D2, D3 any](w *sparse.Vector[D3], mask any, accum any, sr algebra.Semiring[D1, D2, D3], a sparse.MatrixLike[D1], u *sparse.Vector[D2], outp core.OutputControl) {
	prior := w.Contents()
	uc := u.Contents()
	var t []sparse.Entry[D3]
	for i := core.Index(0); i < a.NRows(); i++ {
		if val, ok := dot(a.GetRow(i), uc, sr); ok {
			t = append(t, sparse.Entry[D3]{Index: i, Value: val})
		}
	}
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// Vxm computes w = v * A over semiring sr, column at a time: w[j] is the
// Add-reduction of Mul(v[k], A[k][j]) over every k stored in both v and
// A's column j.
func Vxm[D1, D2, D3 any](w *sparse.Vector[D3], mask any, accum any, sr algebra.Semiring[D1, D2, D3], v *sparse.Vector[D1], a sparse.MatrixLike[D2], outp core.OutputControl) {
	prior := w.Contents()
	vc := v.Contents()
	var t []sparse.Entry[D3]
	for j := core.Index(0); j < a.NCols(); j++ {
		if val, ok := dot(vc, a.GetCol(j), sr); ok {
			t = append(t, sparse.Entry[D3]{Index: j, Value: val})
		}
	}
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}
