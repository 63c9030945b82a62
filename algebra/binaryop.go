package algebra

// BinaryOp is a pure function of two scalar inputs, D1 x D2 -> D3. Name
// is carried for diagnostics and error messages; it is never used for
// dispatch.
type BinaryOp[D1, D2, D3 any] struct {
	Name  string
	Apply func(D1, D2) D3
}

// NewBinaryOp builds a BinaryOp from a name and a function. Kernels never
// construct BinaryOp literals directly outside this package so every
// operator in an error message or log carries a name.
func NewBinaryOp[D1, D2, D3 any](name string, fn func(D1, D2) D3) BinaryOp[D1, D2, D3] {
	return BinaryOp[D1, D2, D3]{Name: name, Apply: fn}
}

// Plus is the standard addition operator over any Number domain.
func Plus[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("plus", func(a, b T) T { return a + b })
}

// Times is the standard multiplication operator over any Number domain.
func Times[T Number]() BinaryOp[T, T, T] {
	return NewBinaryOp("times", func(a, b T) T { return a * b })
}

// Min returns the smaller of its two operands.
func Min[T Ordered]() BinaryOp[T, T, T] {
	return NewBinaryOp("min", func(a, b T) T {
		if a < b {
			return a
		}
		return b
	})
}

// Max returns the larger of its two operands.
func Max[T Ordered]() BinaryOp[T, T, T] {
	return NewBinaryOp("max", func(a, b T) T {
		if a > b {
			return a
		}
		return b
	})
}

// LogicalOr is boolean disjunction.
func LogicalOr() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("logical_or", func(a, b bool) bool { return a || b })
}

// LogicalAnd is boolean conjunction.
func LogicalAnd() BinaryOp[bool, bool, bool] {
	return NewBinaryOp("logical_and", func(a, b bool) bool { return a && b })
}

// GreaterThan reports whether its left operand strictly exceeds its right.
func GreaterThan[T Ordered]() BinaryOp[T, T, bool] {
	return NewBinaryOp("greater_than", func(a, b T) bool { return a > b })
}

// Identity discards its second operand and returns the first unchanged.
func Identity[T any]() BinaryOp[T, T, T] {
	return NewBinaryOp("identity", func(a, _ T) T { return a })
}

// Second discards its first operand and returns the second unchanged. Used
// by MaxSecondSemiring: the multiply phase of a breadth-first-style
// traversal only cares about the edge's endpoint value, not its weight.
func Second[T1, T2 any]() BinaryOp[T1, T2, T2] {
	return NewBinaryOp("second", func(_ T1, b T2) T2 { return b })
}

// First discards its second operand and returns the first unchanged.
func First[T1, T2 any]() BinaryOp[T1, T2, T1] {
	return NewBinaryOp("first", func(a T1, _ T2) T1 { return a })
}
