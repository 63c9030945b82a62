package sparse

import (
	"sort"

	"github.com/amulmgr/graphblas/core"
)

// Vector is a sparse sequence of Entry[T] over a declared Size, sorted by
// Index with no duplicates. The zero value is not usable; construct with
// NewVector.
type Vector[T any] struct {
	size    core.Index
	entries []Entry[T]
}

// NewVector returns an empty Vector of the given declared size.
func NewVector[T any](size core.Index) *Vector[T] {
	return &Vector[T]{size: size}
}

// Size returns the vector's declared dimension, fixed at construction and
// never changed by any operation in this module.
func (v *Vector[T]) Size() core.Index { return v.size }

// Nvals returns the number of stored entries.
func (v *Vector[T]) Nvals() int { return len(v.entries) }

func (v *Vector[T]) search(i core.Index) (int, bool) {
	n := len(v.entries)
	pos := sort.Search(n, func(k int) bool { return v.entries[k].Index >= i })
	return pos, pos < n && v.entries[pos].Index == i
}

// HasElement reports whether index i is stored.
func (v *Vector[T]) HasElement(i core.Index) bool {
	_, found := v.search(i)
	return found
}

// ExtractElement returns the value stored at i, or core.ErrNoValue if i is
// not stored, or core.ErrIndexOutOfBounds if i >= Size.
func (v *Vector[T]) ExtractElement(i core.Index) (T, error) {
	var zero T
	if i >= v.size {
		return zero, core.ErrIndexOutOfBounds
	}
	pos, found := v.search(i)
	if !found {
		return zero, core.ErrNoValue
	}
	return v.entries[pos].Value, nil
}

// SetElement stores val at i, overwriting any existing value there, or
// returns core.ErrIndexOutOfBounds if i >= Size.
func (v *Vector[T]) SetElement(i core.Index, val T) error {
	if i >= v.size {
		return core.ErrIndexOutOfBounds
	}
	pos, found := v.search(i)
	if found {
		v.entries[pos].Value = val
		return nil
	}
	v.entries = append(v.entries, Entry[T]{})
	copy(v.entries[pos+1:], v.entries[pos:])
	v.entries[pos] = Entry[T]{Index: i, Value: val}
	return nil
}

// RemoveElement deletes any stored value at i. It is not an error for i
// to be absent.
func (v *Vector[T]) RemoveElement(i core.Index) {
	pos, found := v.search(i)
	if !found {
		return
	}
	v.entries = append(v.entries[:pos], v.entries[pos+1:]...)
}

// Clear removes every stored entry; Size is unchanged.
func (v *Vector[T]) Clear() {
	v.entries = nil
}

// Contents returns the stored entries in ascending index order. The
// returned slice is owned by the caller; mutating it does not affect v.
func (v *Vector[T]) Contents() []Entry[T] {
	out := make([]Entry[T], len(v.entries))
	copy(out, v.entries)
	return out
}

// ReplaceContents replaces the stored entries wholesale. entries must
// already be sorted by Index with no duplicates; engine kernels that
// build a fresh result use this instead of repeated SetElement calls.
func (v *Vector[T]) ReplaceContents(entries []Entry[T]) {
	v.entries = entries
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{size: v.size, entries: v.Contents()}
}

// StructSize implements the structural mask interface: a mask selects by
// presence of a stored entry, never by its value.
func (v *Vector[T]) StructSize() core.Index { return v.size }

// StructIndices implements the structural mask interface, returning the
// sorted indices of every stored entry regardless of its value.
func (v *Vector[T]) StructIndices() []core.Index {
	out := make([]core.Index, len(v.entries))
	for i, e := range v.entries {
		out[i] = e.Index
	}
	return out
}
