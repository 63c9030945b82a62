package engine

import (
	"sort"

	"github.com/amulmgr/graphblas/core"
	"github.com/amulmgr/graphblas/sparse"
)

func containsSorted(idx []core.Index, i core.Index) bool {
	pos := sort.Search(len(idx), func(k int) bool { return idx[k] >= i })
	return pos < len(idx) && idx[pos] == i
}

// vectorMaskPredicate resolves mask into an "is index i selected" test.
// mask must be core.NoMask, something satisfying sparse.VectorStruct
// (any *sparse.Vector[T]), or a sparse.VectorComplementView over one.
func vectorMaskPredicate(mask any) func(core.Index) bool {
	switch mm := mask.(type) {
	case core.NoMask:
		return func(core.Index) bool { return true }
	case sparse.VectorComplementView:
		idx := mm.V.StructIndices()
		return func(i core.Index) bool { return !containsSorted(idx, i) }
	case sparse.VectorStruct:
		idx := mm.StructIndices()
		return func(i core.Index) bool { return containsSorted(idx, i) }
	default:
		core.PanicInvariant("mask", "unsupported vector mask type")
		return nil
	}
}

// matrixRowMaskPredicate resolves a matrix mask, restricted to row i, into
// an "is column j selected" test.
func matrixRowMaskPredicate(mask any, i core.Index) func(core.Index) bool {
	switch mm := mask.(type) {
	case core.NoMask:
		return func(core.Index) bool { return true }
	case sparse.MatrixComplementView:
		idx := mm.M.StructRowIndices(i)
		return func(j core.Index) bool { return !containsSorted(idx, j) }
	case sparse.MatrixStruct:
		idx := mm.StructRowIndices(i)
		return func(j core.Index) bool { return containsSorted(idx, j) }
	default:
		core.PanicInvariant("mask", "unsupported matrix mask type")
		return nil
	}
}
