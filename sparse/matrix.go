package sparse

import (
	"sort"

	"github.com/amulmgr/graphblas/algebra"
	"github.com/amulmgr/graphblas/core"
)

// Matrix is a "list of lists" sparse matrix: NRows row-vectors, each a
// sorted slice of Entry[T] keyed by column, with no duplicate columns
// within a row. The zero value is not usable; construct with NewMatrix.
type Matrix[T any] struct {
	nrows, ncols core.Index
	rows         [][]Entry[T]
}

// NewMatrix returns an empty Matrix with the given dimensions.
func NewMatrix[T any](nrows, ncols core.Index) *Matrix[T] {
	return &Matrix[T]{nrows: nrows, ncols: ncols, rows: make([][]Entry[T], nrows)}
}

// NRows returns the row dimension.
func (m *Matrix[T]) NRows() core.Index { return m.nrows }

// NCols returns the column dimension.
func (m *Matrix[T]) NCols() core.Index { return m.ncols }

// Nvals returns the total number of stored entries across every row.
func (m *Matrix[T]) Nvals() int {
	n := 0
	for _, r := range m.rows {
		n += len(r)
	}
	return n
}

// GetRow returns row i's stored entries in ascending column order. The
// returned slice is owned by the caller.
func (m *Matrix[T]) GetRow(i core.Index) []Entry[T] {
	out := make([]Entry[T], len(m.rows[i]))
	copy(out, m.rows[i])
	return out
}

// SetRow replaces row i wholesale. row must already be sorted by Index
// with no duplicates; it is used directly (not copied).
func (m *Matrix[T]) SetRow(i core.Index, row []Entry[T]) {
	m.rows[i] = row
}

// MergeRow sorted-merges incoming into row i, combining any overlapping
// column with accum and leaving non-overlapping columns from either side
// untouched (endomorphic accumulate, see DESIGN.md "accumulate domain").
// incoming must be sorted by Index.
func (m *Matrix[T]) MergeRow(i core.Index, incoming []Entry[T], accum algebra.BinaryOp[T, T, T]) {
	m.rows[i] = mergeSorted(m.rows[i], incoming, accum)
}

func mergeSorted[T any](a, b []Entry[T], accum algebra.BinaryOp[T, T, T]) []Entry[T] {
	out := make([]Entry[T], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index < b[j].Index:
			out = append(out, a[i])
			i++
		case a[i].Index > b[j].Index:
			out = append(out, b[j])
			j++
		default:
			out = append(out, Entry[T]{Index: a[i].Index, Value: accum.Apply(a[i].Value, b[j].Value)})
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func (m *Matrix[T]) search(i, j core.Index) (int, bool) {
	row := m.rows[i]
	n := len(row)
	pos := sort.Search(n, func(k int) bool { return row[k].Index >= j })
	return pos, pos < n && row[pos].Index == j
}

// HasElement reports whether (i, j) is stored.
func (m *Matrix[T]) HasElement(i, j core.Index) bool {
	_, found := m.search(i, j)
	return found
}

// ExtractElement returns the value stored at (i, j), or core.ErrNoValue if
// absent, or core.ErrIndexOutOfBounds if i >= NRows or j >= NCols.
func (m *Matrix[T]) ExtractElement(i, j core.Index) (T, error) {
	var zero T
	if i >= m.nrows || j >= m.ncols {
		return zero, core.ErrIndexOutOfBounds
	}
	pos, found := m.search(i, j)
	if !found {
		return zero, core.ErrNoValue
	}
	return m.rows[i][pos].Value, nil
}

// SetElement stores val at (i, j), overwriting any existing value, or
// returns core.ErrIndexOutOfBounds if i >= NRows or j >= NCols.
func (m *Matrix[T]) SetElement(i, j core.Index, val T) error {
	if i >= m.nrows || j >= m.ncols {
		return core.ErrIndexOutOfBounds
	}
	pos, found := m.search(i, j)
	row := m.rows[i]
	if found {
		row[pos].Value = val
		return nil
	}
	row = append(row, Entry[T]{})
	copy(row[pos+1:], row[pos:])
	row[pos] = Entry[T]{Index: j, Value: val}
	m.rows[i] = row
	return nil
}

// GetCol materializes column j by scanning every row: there is no
// secondary column index, so cost is O(NRows + Nvals).
func (m *Matrix[T]) GetCol(j core.Index) []Entry[T] {
	var out []Entry[T]
	for i, row := range m.rows {
		pos := sort.Search(len(row), func(k int) bool { return row[k].Index >= j })
		if pos < len(row) && row[pos].Index == j {
			out = append(out, Entry[T]{Index: core.Index(i), Value: row[pos].Value})
		}
	}
	return out
}

// Clear removes every stored entry; dimensions are unchanged.
func (m *Matrix[T]) Clear() {
	for i := range m.rows {
		m.rows[i] = nil
	}
}

// ClearRow empties row i.
func (m *Matrix[T]) ClearRow(i core.Index) {
	m.rows[i] = nil
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := NewMatrix[T](m.nrows, m.ncols)
	for i, row := range m.rows {
		out.rows[i] = append([]Entry[T](nil), row...)
	}
	return out
}

// StructNRows implements the structural mask interface.
func (m *Matrix[T]) StructNRows() core.Index { return m.nrows }

// StructNCols implements the structural mask interface.
func (m *Matrix[T]) StructNCols() core.Index { return m.ncols }

// StructRowIndices implements the structural mask interface, returning the
// sorted column indices stored in row i regardless of value.
func (m *Matrix[T]) StructRowIndices(i core.Index) []core.Index {
	row := m.rows[i]
	out := make([]core.Index, len(row))
	for k, e := range row {
		out[k] = e.Index
	}
	return out
}
