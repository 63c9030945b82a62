package engine

import (
	"sort"

	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

// IndexSet selects either every position (AllIndices) or an explicit list
// of positions, for use by Assign and Extract.
type IndexSet struct {
	all     bool
	indices []core.Index
}

// AllIndices selects every position along a dimension.
func AllIndices() IndexSet { return IndexSet{all: true} }

// Indices selects exactly the given positions, in the given order — order
// matters for AssignVector and ExtractVector, where idx[k] pairs with
// position k on the other side of the operation.
func Indices(idx ...core.Index) IndexSet {
	return IndexSet{indices: append([]core.Index(nil), idx...)}
}

func (s IndexSet) resolve(dim core.Index) []core.Index {
	if s.all {
		out := make([]core.Index, dim)
		for i := range out {
			out[i] = core.Index(i)
		}
		return out
	}
	return s.indices
}

// AssignConstantVector writes val at every position named by idx.
func AssignConstantVector[D any](w *sparse.Vector[D], mask any, accum any, val D, idx IndexSet, outp core.OutputControl) {
	prior := w.Contents()
	positions := idx.resolve(w.Size())
	t := make([]sparse.Entry[D], len(positions))
	for k, i := range positions {
		t[k] = sparse.Entry[D]{Index: i, Value: val}
	}
	sort.Slice(t, func(a, b int) bool { return t[a].Index < t[b].Index })
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// AssignVector writes u's stored entries, restricted to and renumbered by
// idx (idx[k] receives u's entry at vector position k), into w.
func AssignVector[D any](w *sparse.Vector[D], mask any, accum any, u *sparse.Vector[D], idx IndexSet, outp core.OutputControl) {
	prior := w.Contents()
	positions := idx.resolve(u.Size())
	var t []sparse.Entry[D]
	for _, e := range u.Contents() {
		if int(e.Index) >= len(positions) {
			continue
		}
		t = append(t, sparse.Entry[D]{Index: positions[e.Index], Value: e.Value})
	}
	sort.Slice(t, func(a, b int) bool { return t[a].Index < t[b].Index })
	z := ewiseOrOptAccum(prior, t, accum)
	writeVector(w, prior, z, mask, outp)
}

// AssignConstantMatrix writes val at every (row, col) named by rowIdx x
// colIdx into w.
func AssignConstantMatrix[D any](w *sparse.Matrix[D], mask any, accum any, val D, rowIdx, colIdx IndexSet, outp core.OutputControl) {
	rows := rowIdx.resolve(w.NRows())
	cols := colIdx.resolve(w.NCols())
	for _, i := range rows {
		prior := w.GetRow(i)
		t := make([]sparse.Entry[D], len(cols))
		for k, j := range cols {
			t[k] = sparse.Entry[D]{Index: j, Value: val}
		}
		sort.Slice(t, func(a, b int) bool { return t[a].Index < t[b].Index })
		z := ewiseOrOptAccum(prior, t, accum)
		writeMatrixRow(w, i, prior, z, mask, outp)
	}
}
