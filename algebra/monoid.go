package algebra

import "github.com/amulmgr/graphblas/core"

// Monoid is a BinaryOp on a single domain together with a two-sided
// identity: op(x, id) == op(id, x) == x for every x in D.
type Monoid[D any] struct {
	BinaryOp[D, D, D]
	Identity D
}

// NewMonoid builds a Monoid and checks the identity law at the identity
// itself (op(id, id) == id). That is a necessary, not sufficient,
// condition for a true identity, but it is the only check possible without
// requiring the caller to supply arbitrary probe values, and it catches the
// overwhelmingly common mistake (wrong identity constant) at construction
// time rather than deep inside a kernel. A failure panics with
// *core.InvariantViolation.
func NewMonoid[D comparable](op BinaryOp[D, D, D], identity D) Monoid[D] {
	if got := op.Apply(identity, identity); got != identity {
		core.PanicInvariant("NewMonoid", "identity "+op.Name+" failed op(id, id) == id")
	}
	return Monoid[D]{BinaryOp: op, Identity: identity}
}

// PlusMonoid is (Plus, 0).
func PlusMonoid[T Number]() Monoid[T] {
	return NewMonoid(Plus[T](), T(0))
}

// TimesMonoid is (Times, 1).
func TimesMonoid[T Number]() Monoid[T] {
	return NewMonoid(Times[T](), T(1))
}

// LogicalOrMonoid is (LogicalOr, false).
func LogicalOrMonoid() Monoid[bool] {
	return NewMonoid(LogicalOr(), false)
}

// LogicalAndMonoid is (LogicalAnd, true).
func LogicalAndMonoid() Monoid[bool] {
	return NewMonoid(LogicalAnd(), true)
}
