package sparse

import "github.com/amulmgr/graphblas/core"

// Entry is one stored (index, value) pair. A Vector is a sorted slice of
// Entry; a Matrix row is a sorted slice of Entry keyed by column.
type Entry[T any] struct {
	Index core.Index
	Value T
}
