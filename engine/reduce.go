package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// Reduce folds each row of a down to a scalar with op, producing w[i] for
// every row with at least one stored entry; an empty row contributes no
// entry to w.
func Reduce[D any](w *sparse.Vector[D], mask any, accum any, op algebra.BinaryOp[D, D, D], a sparse.MatrixLike[D], outp core.OutputControl) {
	prior := w.Contents()
	var t []sparse.Entry[D]
	for i := core.Index(0); i < a.NRows(); i++ {
		row := a.GetRow(i)
		if len(row) == 0 {
			continue
		}
		acc := row[0].Value
		for _, e := range row[1:] {
			acc = op.Apply(acc, e.Value)
		}
		t = append(t, sparse.Entry[D]{Index: i, Value: acc})
	}
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// ReduceToScalar folds every stored entry of u into monoid's identity,
// then combines that fold with prior via accum (or returns the fold
// directly when accum is core.NoAccumulate). The identity seed means an
// empty u reduces to monoid.Identity rather than requiring a separate
// empty-input case.
func ReduceToScalar[D any](prior D, accum any, monoid algebra.Monoid[D], u *sparse.Vector[D]) D {
	t := monoid.Identity
	for _, e := range u.Contents() {
		t = monoid.Apply(t, e.Value)
	}
	return combineScalar(prior, t, accum)
}

// ReduceMatrixToScalar folds every stored entry of a matrix into monoid's
// identity, then combines that fold with prior via accum.
func ReduceMatrixToScalar[D any](prior D, accum any, monoid algebra.Monoid[D], a sparse.MatrixLike[D]) D {
	t := monoid.Identity
	for i := core.Index(0); i < a.NRows(); i++ {
		for _, e := range a.GetRow(i) {
			t = monoid.Apply(t, e.Value)
		}
	}
	return combineScalar(prior, t, accum)
}

func combineScalar[D any](prior, t D, accum any) D {
	if core.IsNoAccumulate(accum) {
		return t
	}
	op, ok := accum.(algebra.BinaryOp[D, D, D])
	if !ok {
		core.PanicInvariant("accumulate", "accum must be core.NoAccumulate or an endomorphic BinaryOp on the output domain")
	}
	return op.Apply(prior, t)
}
