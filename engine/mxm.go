package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// Mxm computes c = a * b over semiring sr. a and b may each be a plain
// *Matrix or a TransposeView, giving the four orientations A·B, Aᵀ·B,
// A·Bᵀ, Aᵀ·Bᵀ. A·B and Aᵀ·B each have their own physical strategy below
// (mxmCanonical, mxmATB); the two "...·Bᵀ" orientations materialize B's
// transpose once and delegate.
func Mxm[D1, D2, D3 any](c *sparse.Matrix[D3], mask any, accum any, sr algebra.Semiring[D1, D2, D3], a, b any, outp core.OutputControl) {
	switch av := a.(type) {
	case *sparse.Matrix[D1]:
		switch bv := b.(type) {
		case *sparse.Matrix[D2]:
			mxmCanonical(c, mask, accum, sr, av, bv, outp)
			return
		case sparse.TransposeView[D2]:
			mxmCanonical(c, mask, accum, sr, av, bv.Materialize(), outp)
			return
		default:
			core.PanicInvariant("Mxm", "unsupported B operand type")
		}
	case sparse.TransposeView[D1]:
		switch bv := b.(type) {
		case *sparse.Matrix[D2]:
			mxmATB(c, mask, accum, sr, av, bv, outp)
			return
		case sparse.TransposeView[D2]:
			mxmATB(c, mask, accum, sr, av, bv.Materialize(), outp)
			return
		default:
			core.PanicInvariant("Mxm", "unsupported B operand type")
		}
	default:
		core.PanicInvariant("Mxm", "unsupported A operand type")
	}
}

// mxmCanonical is the A·B orientation: row i of C is built from row i of
// A by dot-producting against every column of B. b and c may alias the
// same matrix, so every row's result is computed into a buffer first and
// only written back in a second pass — writing row i before computing
// row i+1 would let row i+1's b.GetCol(j) calls read back-in-progress
// output instead of the original operand. Empty operands or an empty
// mask degenerate correctly through the ordinary accumulate/write phases
// without any special-cased short-circuit (see writeback.go).
func mxmCanonical[D1, D2, D3 any](c *sparse.Matrix[D3], mask any, accum any, sr algebra.Semiring[D1, D2, D3], a *sparse.Matrix[D1], b *sparse.Matrix[D2], outp core.OutputControl) {
	nrows := c.NRows()
	t := make([][]sparse.Entry[D3], nrows)
	for i := core.Index(0); i < nrows; i++ {
		arow := a.GetRow(i)
		if len(arow) == 0 {
			continue
		}
		var row []sparse.Entry[D3]
		for j := core.Index(0); j < c.NCols(); j++ {
			if val, ok := dot(arow, b.GetCol(j), sr); ok {
				row = append(row, sparse.Entry[D3]{Index: j, Value: val})
			}
		}
		t[i] = row
	}
	for i := core.Index(0); i < nrows; i++ {
		prior := c.GetRow(i)
		z := ewiseOrOptAccum(prior, t[i], accum)
		writeMatrixRow(c, i, prior, z, mask, outp)
	}
}

// mxmATB is the Aᵀ·B orientation: instead of dot-producting against
// physical columns of the transposed A (an O(nrows) scan per lookup), it
// scatters each stored a[k][i] (which is Aᵀ[i][k]) as scalar * B's row k
// into an accumulator for output row i, one pass over A's real storage.
func mxmATB[D1, D2, D3 any](c *sparse.Matrix[D3], mask any, accum any, sr algebra.Semiring[D1, D2, D3], at sparse.TransposeView[D1], b *sparse.Matrix[D2], outp core.OutputControl) {
	aOrig := at.M
	nrows := c.NRows()
	t := make([][]sparse.Entry[D3], nrows)
	for k := core.Index(0); k < aOrig.NRows(); k++ {
		browK := b.GetRow(k)
		if len(browK) == 0 {
			continue
		}
		for _, e := range aOrig.GetRow(k) {
			t[e.Index] = axpyInto(t[e.Index], e.Value, browK, sr)
		}
	}
	for i := core.Index(0); i < nrows; i++ {
		prior := c.GetRow(i)
		z := ewiseOrOptAccum(prior, t[i], accum)
		writeMatrixRow(c, i, prior, z, mask, outp)
	}
}
