package sparse

import "github.com/amulmgr/graphblas/core"

// NewVectorFromDense builds a Vector from a dense slice, omitting every
// entry equal to sentinel. Any other value, including a zero that is not
// itself the sentinel, is retained as a stored entry.
func NewVectorFromDense[T comparable](dense []T, sentinel T) *Vector[T] {
	v := NewVector[T](core.Index(len(dense)))
	for i, val := range dense {
		if val == sentinel {
			continue
		}
		v.entries = append(v.entries, Entry[T]{Index: core.Index(i), Value: val})
	}
	return v
}

// ToDense expands v into a dense slice of length Size, filling unstored
// positions with fill.
func ToDense[T any](v *Vector[T], fill T) []T {
	out := make([]T, v.size)
	for i := range out {
		out[i] = fill
	}
	for _, e := range v.entries {
		out[e.Index] = e.Value
	}
	return out
}

// NewMatrixFromDense builds a Matrix from a row-major dense slice of
// slices, omitting every entry equal to sentinel.
func NewMatrixFromDense[T comparable](dense [][]T, sentinel T) *Matrix[T] {
	nrows := core.Index(len(dense))
	var ncols core.Index
	if nrows > 0 {
		ncols = core.Index(len(dense[0]))
	}
	m := NewMatrix[T](nrows, ncols)
	for i, drow := range dense {
		var row []Entry[T]
		for j, val := range drow {
			if val == sentinel {
				continue
			}
			row = append(row, Entry[T]{Index: core.Index(j), Value: val})
		}
		m.rows[i] = row
	}
	return m
}

// ToDenseMatrix expands m into a row-major dense slice of slices, filling
// unstored positions with fill.
func ToDenseMatrix[T any](m *Matrix[T], fill T) [][]T {
	out := make([][]T, m.nrows)
	for i := range out {
		row := make([]T, m.ncols)
		for j := range row {
			row[j] = fill
		}
		for _, e := range m.rows[i] {
			row[e.Index] = e.Value
		}
		out[i] = row
	}
	return out
}
