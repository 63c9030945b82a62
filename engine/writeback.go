package engine

import (
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// mergeWrite folds prior (C, the output's contents before this call) and z
// (Z, the freshly accumulated result) into the output's final contents,
// visiting only indices present in prior or z: at a mask-in index the
// output takes z's entry (present or, if z has none there, absent); at a
// mask-out index the output keeps prior's entry under Merge and drops it
// under Replace. Every index not present in either prior or z needs no
// entry in the output regardless of mask, which is why this never needs
// to walk the full declared dimension; every short-circuit behavior an
// operation with empty operands or an empty mask should exhibit falls
// out of this as an emergent consequence, not a separately coded fast
// path (see DESIGN.md).
func mergeWrite[T any](prior, z []sparse.Entry[T], in func(core.Index) bool, outp core.OutputControl) []sparse.Entry[T] {
	out := make([]sparse.Entry[T], 0, len(prior)+len(z))
	i, j := 0, 0
	for i < len(prior) || j < len(z) {
		var idx core.Index
		hasP, hasZ := false, false
		switch {
		case j >= len(z) || (i < len(prior) && prior[i].Index < z[j].Index):
			idx, hasP = prior[i].Index, true
		case i >= len(prior) || z[j].Index < prior[i].Index:
			idx, hasZ = z[j].Index, true
		default:
			idx, hasP, hasZ = prior[i].Index, true, true
		}
		maskIn := in(idx)
		switch {
		case maskIn && hasZ:
			out = append(out, sparse.Entry[T]{Index: idx, Value: z[j].Value})
		case !maskIn && hasP && outp == core.Merge:
			out = append(out, sparse.Entry[T]{Index: idx, Value: prior[i].Value})
		}
		if hasP {
			i++
		}
		if hasZ {
			j++
		}
	}
	return out
}

// writeVector applies the write phase to w given its pre-call contents
// (prior) and the accumulated result z.
func writeVector[T any](w *sparse.Vector[T], prior, z []sparse.Entry[T], mask any, outp core.OutputControl) {
	if core.IsNoMask(mask) {
		// Every position is selected, so the result is z itself.
		w.ReplaceContents(z)
		return
	}
	in := vectorMaskPredicate(mask)
	w.ReplaceContents(mergeWrite(prior, z, in, outp))
}

// writeMatrixRow applies the write phase to row i of w.
func writeMatrixRow[T any](w *sparse.Matrix[T], i core.Index, prior, z []sparse.Entry[T], mask any, outp core.OutputControl) {
	if core.IsNoMask(mask) {
		w.SetRow(i, z)
		return
	}
	in := matrixRowMaskPredicate(mask, i)
	w.SetRow(i, mergeWrite(prior, z, in, outp))
}
