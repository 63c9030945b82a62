package sparse

import "github.com/amulmgr/graphblas/core"

// MatrixLike is satisfied by *Matrix[T] and TransposeView[T]. Engine
// kernels take operands through this interface so a transposed operand
// needs no separate code path: every read on the view is answered by
// delegating to the underlying matrix with rows and columns swapped.
type MatrixLike[T any] interface {
	NRows() core.Index
	NCols() core.Index
	GetRow(i core.Index) []Entry[T]
	GetCol(j core.Index) []Entry[T]
}

// TransposeView presents M with rows and columns swapped, without
// copying. It owns no storage: GetRow(i) delegates to M.GetCol(i) and
// vice versa.
type TransposeView[T any] struct {
	M *Matrix[T]
}

// Transpose wraps m in a TransposeView.
func Transpose[T any](m *Matrix[T]) TransposeView[T] {
	return TransposeView[T]{M: m}
}

func (t TransposeView[T]) NRows() core.Index          { return t.M.NCols() }
func (t TransposeView[T]) NCols() core.Index          { return t.M.NRows() }
func (t TransposeView[T]) GetRow(i core.Index) []Entry[T] { return t.M.GetCol(i) }
func (t TransposeView[T]) GetCol(j core.Index) []Entry[T] { return t.M.GetRow(j) }

// Materialize builds a concrete Matrix equal to t, physically swapping
// storage. Used when a kernel needs real row-major access to a
// transposed operand rather than paying GetCol's full-scan cost on every
// call.
func (t TransposeView[T]) Materialize() *Matrix[T] {
	out := NewMatrix[T](t.NRows(), t.NCols())
	for i := core.Index(0); i < out.NRows(); i++ {
		out.SetRow(i, t.GetRow(i))
	}
	return out
}

// VectorStruct is the structural view any *Vector[T], for any T,
// satisfies: presence of an index, not its value. Used by the engine
// package to resolve masks of arbitrary domain without needing the
// mask's element type as a type parameter.
type VectorStruct interface {
	StructSize() core.Index
	StructIndices() []core.Index
}

// MatrixStruct is the structural view any *Matrix[T], for any T,
// satisfies.
type MatrixStruct interface {
	StructNRows() core.Index
	StructNCols() core.Index
	StructRowIndices(i core.Index) []core.Index
}

// VectorComplementView is the structural complement of a vector: index i
// is "in" the view iff it is NOT stored in V. It carries no value
// domain, only presence is ever queried.
type VectorComplementView struct {
	V VectorStruct
}

// Complement wraps v in its structural complement. It accepts only a
// *Vector, so a VectorComplementView cannot be complemented a second time;
// there is no double-complement view.
func Complement[T any](v *Vector[T]) VectorComplementView {
	return VectorComplementView{V: v}
}

// MatrixComplementView is the structural complement of a matrix.
type MatrixComplementView struct {
	M MatrixStruct
}

// ComplementMatrix wraps m in its structural complement.
func ComplementMatrix[T any](m *Matrix[T]) MatrixComplementView {
	return MatrixComplementView{M: m}
}
