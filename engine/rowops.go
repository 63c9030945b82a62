package engine

import (
	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// ewiseAnd computes the sorted structural intersection of a and b,
// applying op to each matched pair.
func ewiseAnd[D1, D2, D3 any](a []sparse.Entry[D1], b []sparse.Entry[D2], op algebra.BinaryOp[D1, D2, D3]) []sparse.Entry[D3] {
	out := make([]sparse.Entry[D3], 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			out = append(out, sparse.Entry[D3]{Index: a[i].Index, Value: op.Apply(a[i].Value, b[j].Value)})
			i++
			j++
		}
	}
	return out
}

// ewiseOr computes the sorted structural union of a and b: where both are
// stored, op combines them; where only one is stored, its value passes
// through unchanged. This doubles as the accumulate-phase combinator,
// C ⊕ T.
func ewiseOr[D any](a, b []sparse.Entry[D], op algebra.BinaryOp[D, D, D]) []sparse.Entry[D] {
	out := make([]sparse.Entry[D], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			out = append(out, a[i])
			i++
		case a[i].Index > b[j].Index:
			out = append(out, b[j])
			j++
		default:
			out = append(out, sparse.Entry[D]{Index: a[i].Index, Value: op.Apply(a[i].Value, b[j].Value)})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// ewiseOrOptAccum is the accumulate phase of the uniform pipeline:
// Z = C ⊕ T when accum is a real BinaryOp, or Z = T directly when accum
// is core.NoAccumulate.
func ewiseOrOptAccum[D any](c, t []sparse.Entry[D], accum any) []sparse.Entry[D] {
	if core.IsNoAccumulate(accum) {
		return t
	}
	op, ok := accum.(algebra.BinaryOp[D, D, D])
	if !ok {
		core.PanicInvariant("accumulate", "accum must be core.NoAccumulate or an endomorphic BinaryOp on the output domain")
	}
	return ewiseOr(c, t, op)
}

// dot reduces the structural intersection of a and b under semiring sr:
// result, true when at least one (Mul-combined) pair exists; sr.Add's
// identity, false when a and b share no stored column/row. Absence, not the
// monoid identity, represents "no contribution" here.
func dot[D1, D2, D3 any](a []sparse.Entry[D1], b []sparse.Entry[D2], sr algebra.Semiring[D1, D2, D3]) (D3, bool) {
	i, j := 0, 0
	acc := sr.Add.Identity
	found := false
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			i++
		case a[i].Index > b[j].Index:
			j++
		default:
			term := sr.Mul.Apply(a[i].Value, b[j].Value)
			if found {
				acc = sr.Add.Apply(acc, term)
			} else {
				acc = term
			}
			found = true
			i++
			j++
		}
	}
	return acc, found
}

// axpyInto scatters scalar * row into the accumulator acc using semiring
// sr, merging by column so acc stays sorted. Used by the Aᵀ·B matrix
// product kernel, which walks A's real row storage and scatters each
// row's scaled contribution into the corresponding output rows.
func axpyInto[D1, D2, D3 any](acc []sparse.Entry[D3], scalar D1, row []sparse.Entry[D2], sr algebra.Semiring[D1, D2, D3]) []sparse.Entry[D3] {
	scaled := make([]sparse.Entry[D3], len(row))
	for k, e := range row {
		scaled[k] = sparse.Entry[D3]{Index: e.Index, Value: sr.Mul.Apply(scalar, e.Value)}
	}
	return ewiseOr(acc, scaled, sr.Add.BinaryOp)
}
