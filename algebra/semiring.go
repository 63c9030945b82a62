package algebra

// Semiring pairs an additive Monoid over D3 with a multiplicative BinaryOp
// D1 x D2 -> D3. mxm/mxv/vxm reduce with Add over pairwise Mul results;
// ArithmeticSemiring, LogicalSemiring, and MaxSecondSemiring are the
// three the standard library below provides.
type Semiring[D1, D2, D3 any] struct {
	Add Monoid[D3]
	Mul BinaryOp[D1, D2, D3]
}

// NewSemiring builds a Semiring from an additive monoid and a
// multiplicative operator whose result domain matches the monoid's domain
// (enforced by the type parameters themselves — D3 unifies both).
func NewSemiring[D1, D2, D3 any](add Monoid[D3], mul BinaryOp[D1, D2, D3]) Semiring[D1, D2, D3] {
	return Semiring[D1, D2, D3]{Add: add, Mul: mul}
}

// ArithmeticSemiring is (Plus, Times) over any Number domain — the default
// semiring for numeric matrix multiplication.
func ArithmeticSemiring[T Number]() Semiring[T, T, T] {
	return NewSemiring(PlusMonoid[T](), Times[T]())
}

// LogicalSemiring is (LogicalOr, LogicalAnd) — boolean reachability
// composition, useful for finding neighbors of a selected vertex set.
func LogicalSemiring() Semiring[bool, bool, bool] {
	return NewSemiring(LogicalOrMonoid(), LogicalAnd())
}

// MaxSecondSemiring is (Max, Second) over any Ordered domain — for each
// row, finds the value carried by whichever column holds the largest
// value in the input vector.
func MaxSecondSemiring[T Ordered]() Semiring[T, T, T] {
	return NewSemiring(maxMonoidZero[T](), Second[T, T]())
}

// maxMonoidZero builds a Max monoid identity-checked at the zero value of
// T. This is only valid when every real operand stays >= the zero value;
// it is not a general-purpose Max monoid, so it stays unexported.
func maxMonoidZero[T Ordered]() Monoid[T] {
	var zero T
	return NewMonoid(Max[T](), zero)
}
