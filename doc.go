// Package graphblas is a sparse linear-algebra engine built around the
// GraphBLAS algebraic model: every operation computes a masked,
// accumulated result over a user-supplied semiring and writes it back
// under an explicit output-control policy.
//
// What is graphblas?
//
//	A small, mostly-generic library that brings together:
//		- Algebra objects: BinaryOp, UnaryOp, Monoid, Semiring, parameterized over any domain
//		- Sparse containers: Vector and Matrix, list-of-lists storage, plus TransposeView and complement views
//		- A single write pipeline: compute, accumulate, then merge under a mask (core.Merge or core.Replace)
//		- Operations: EWiseMult, EWiseAdd, Mxv, Vxm, Mxm, Reduce, Apply, Assign, Extract
//		- Algorithms: a randomized maximal independent set built entirely on top of the above
//
// Everything is organized under a handful of subpackages:
//
//	core/          — Index, OutputControl, the NoMask/NoAccumulate sentinels, the error taxonomy
//	algebra/       — BinaryOp, UnaryOp, Monoid, Semiring and a library of named operators
//	sparse/        — Vector, Matrix, TransposeView, complement views
//	engine/        — the masked-accumulate-write pipeline and every operation built on it
//	algorithms/    — MaximalIndependentSet
//	internal/grbrand — the seeded random source algorithms draws on
//
// A minimal example: adding two sparse vectors under the arithmetic
// semiring's addition, writing the result over whatever w held before.
//
//	u := sparse.NewVectorFromDense([]float64{1, 0, 3}, 0)
//	v := sparse.NewVectorFromDense([]float64{0, 5, 0}, 0)
//	w := sparse.NewVector[float64](3)
//	engine.EWiseAddVector(w, core.NoMask{}, core.NoAccumulate{}, algebra.Plus[float64](), u, v, core.Replace)
//
// Every operation in engine/ follows the same shape: a destination, a
// mask (core.NoMask{} for none, or a *sparse.Vector/*sparse.Matrix of
// any type, or one of the complement views), an accumulate (either
// core.NoAccumulate{} or a BinaryOp on the destination's own domain),
// the operands, and an output-control policy deciding whether
// mask-excluded entries in the destination survive the write.
package graphblas
