package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// EWiseMultVector computes w = (u .* v) masked/accumulated into w. Only
// indices stored in both u and v contribute to T.
func EWiseMultVector[D1, D2, D3 any](w *sparse.Vector[D3], mask any, accum any, op algebra.BinaryOp[D1, D2, D3], u *sparse.Vector[D1], v *sparse.Vector[D2], outp core.OutputControl) {
	prior := w.Contents()
	t := ewiseAnd(u.Contents(), v.Contents(), op)
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// EWiseAddVector computes w = (u + v) masked/accumulated into w. op is
// endomorphic (single domain D): an index stored in only one of u, v
// passes that value through unchanged, which is only well-typed when
// both operands and the result share one domain (see DESIGN.md
// "eWiseAdd domain").
func EWiseAddVector[D any](w *sparse.Vector[D], mask any, accum any, op algebra.BinaryOp[D, D, D], u, v *sparse.Vector[D], outp core.OutputControl) {
	prior := w.Contents()
	t := ewiseOr(u.Contents(), v.Contents(), op)
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// EWiseMultMatrix computes w = (a .* b), row at a time. a and b are taken
// through sparse.MatrixLike so any combination of plain and transposed
// operands works without a separate code path per variant.
func EWiseMultMatrix[D1, D2, D3 any](w *sparse.Matrix[D3], mask any, accum any, op algebra.BinaryOp[D1, D2, D3], a sparse.MatrixLike[D1], b sparse.MatrixLike[D2], outp core.OutputControl) {
	for i := core.Index(0); i < w.NRows(); i++ {
		prior := w.GetRow(i)
		t := ewiseAnd(a.GetRow(i), b.GetRow(i), op)
		z := ewiseOrOptAccum(prior, t, accum)
		writeMatrixRow(w, i, prior, z, mask, outp)
	}
}

// EWiseAddMatrix computes w = (a + b), row at a time, under an
// endomorphic op (see EWiseAddVector's domain note).
func EWiseAddMatrix[D any](w *sparse.Matrix[D], mask any, accum any, op algebra.BinaryOp[D, D, D], a, b sparse.MatrixLike[D], outp core.OutputControl) {
	for i := core.Index(0); i < w.NRows(); i++ {
		prior := w.GetRow(i)
		t := ewiseOr(a.GetRow(i), b.GetRow(i), op)
		z := ewiseOrOptAccum(prior, t, accum)
		writeMatrixRow(w, i, prior, z, mask, outp)
	}
}
