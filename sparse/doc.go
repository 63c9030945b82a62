// Package sparse implements the row-indexed "list of lists" sparse
// containers the engine package operates on: Vector, a sorted (index,
// value) sequence over a declared size, and Matrix, nrows row-vectors
// sorted by column index.
//
// Every container preserves two invariants across every public mutation:
// row/vector entries stay sorted by index with no duplicates, and Nvals
// always equals the number of actually stored entries.
//
// TransposeView and the two Complement views (VectorComplementView,
// MatrixComplementView) are lightweight, non-owning wrappers created per
// call site; they never copy the underlying storage and their lifetime
// is bounded by the container they wrap.
package sparse
