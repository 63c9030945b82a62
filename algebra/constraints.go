package algebra

// Number constrains the scalar domains the numeric standard-library
// operators (Plus, Times, ArithmeticSemiring, ...) are defined over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Ordered constrains the domains the comparison operators (Min, Max,
// GreaterThan) are defined over.
type Ordered interface {
	Number | ~string
}
