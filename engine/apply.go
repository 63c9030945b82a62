package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// ApplyVector writes op(u[i]) for every stored i, masked/accumulated into
// w. Structure is preserved: every stored entry of u yields exactly one
// entry of T, so Apply with an identity op prunes nothing, while feeding
// a structural projection through it turns any stored-value domain into a
// boolean presence mask.
func ApplyVector[D1, D2 any](w *sparse.Vector[D2], mask any, accum any, op algebra.UnaryOp[D1, D2], u *sparse.Vector[D1], outp core.OutputControl) {
	prior := w.Contents()
	uc := u.Contents()
	t := make([]sparse.Entry[D2], len(uc))
	for i, e := range uc {
		t[i] = sparse.Entry[D2]{Index: e.Index, Value: op.Apply(e.Value)}
	}
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// ApplyMatrix writes op(a[i][j]) for every stored (i, j), masked/
// accumulated into w, row at a time.
func ApplyMatrix[D1, D2 any](w *sparse.Matrix[D2], mask any, accum any, op algebra.UnaryOp[D1, D2], a sparse.MatrixLike[D1], outp core.OutputControl) {
	for i := core.Index(0); i < w.NRows(); i++ {
		prior := w.GetRow(i)
		arow := a.GetRow(i)
		t := make([]sparse.Entry[D2], len(arow))
		for k, e := range arow {
			t[k] = sparse.Entry[D2]{Index: e.Index, Value: op.Apply(e.Value)}
		}
		z := ewiseOrOptAccum(prior, t, accum)
		writeMatrixRow(w, i, prior, z, mask, outp)
	}
}
