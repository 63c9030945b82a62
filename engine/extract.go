package engine

import (
	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// ExtractVector builds w[k] = u[idx[k]] for every k where idx[k] is
// stored in u.
func ExtractVector[D any](w *sparse.Vector[D], mask any, accum any, u *sparse.Vector[D], idx IndexSet, outp core.OutputControl) {
	prior := w.Contents()
	positions := idx.resolve(u.Size())
	t := make([]sparse.Entry[D], 0, len(positions))
	for k, i := range positions {
		if val, err := u.ExtractElement(i); err == nil {
			t = append(t, sparse.Entry[D]{Index: core.Index(k), Value: val})
		}
	}
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// ExtractMatrix builds w[i][j] = a[rowIdx[i]][colIdx[j]] for every stored
// source position.
func ExtractMatrix[D any](w *sparse.Matrix[D], mask any, accum any, a sparse.MatrixLike[D], rowIdx, colIdx IndexSet, outp core.OutputControl) {
	rows := rowIdx.resolve(a.NRows())
	cols := colIdx.resolve(a.NCols())
	for i, srcRow := range rows {
		prior := w.GetRow(core.Index(i))
		srcEntries := a.GetRow(srcRow)
		var t []sparse.Entry[D]
		for k, srcCol := range cols {
			for _, e := range srcEntries {
				if e.Index == srcCol {
					t = append(t, sparse.Entry[D]{Index: core.Index(k), Value: e.Value})
					break
				}
			}
		}
		z := ewiseOrOptAccum(prior, t, accum)
		writeMatrixRow(w, core.Index(i), prior, z, mask, outp)
	}
}
