// Package algebra defines the algebraic object model every engine kernel is
// parameterized over: binary operators, monoids, semirings, and unary
// operators, plus a standard library of each.
//
// All objects here are pure value types — a BinaryOp is a named function,
// a Monoid adds a two-sided identity, a Semiring bundles an additive
// monoid with a multiplicative operator. The library is open: any value
// satisfying these shapes works with engine, whether built with the
// constructors below or assembled directly by a caller.
package algebra
