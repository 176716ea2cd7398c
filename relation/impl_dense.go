// SPDX-License-Identifier: MIT

// Package relation - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major bool buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Every operation in this package has a *Dense fast-path over the flat data slice;
//     pass *Dense whenever you can.
//   - A 0×0 Dense is a legal empty relation: predicates on it are vacuously true.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Transpose/Equal: O(r*c).

package relation

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxCol    = "Col"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxSetCol = "SetCol" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtTrue     = "1"
	_fmtFalse    = "0"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major boolean matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int    // row and column counts (>=0)
	data []bool // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an n×n relation with every cell false (the empty relation).
// MAIN DESCRIPTION:
//   - Public constructor for square relations; n == 0 yields the legal
//     relation over the empty set.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrBadShape.
//   - Stage 2: allocate zero-filled (all false) buffer.
//
// Errors:
//   - ErrBadShape (negative order).
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// AI-Hints:
//   - Prefer FromInts in tests: literal 0/1 tables read like the math.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, relationErrorf("NewDense", ErrBadShape)
	}

	return newDense(n, n), nil
}

// NewRect creates a rows×cols all-false matrix.
// Allocation is the only operation that accepts non-square shapes; every
// relation operation rejects the result with ErrNonSquare unless rows == cols.
// Complexity: O(rows*cols).
func NewRect(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, relationErrorf("NewRect", ErrBadShape)
	}

	return newDense(rows, cols), nil
}

// newDense is the unchecked allocator shared by constructors and kernels.
// Callers guarantee non-negative dimensions.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]bool, rows*cols)}
}

// FromRows builds a Dense from a row-major table of bools (copied).
// MAIN DESCRIPTION:
//   - Convenience ingestion for literal fixtures and callers holding [][]bool.
//
// Implementation:
//   - Stage 1: check every row has len(rows[0]); ragged input → ErrBadShape.
//   - Stage 2: copy row by row into the flat buffer.
//
// Behavior highlights:
//   - An empty (or nil) table yields a 0×0 Dense.
//   - Shape is not forced square here; operations validate squareness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]bool) (*Dense, error) {
	if len(rows) == 0 {
		return newDense(0, 0), nil
	}
	cols := len(rows[0])
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, relationErrorf("FromRows", ErrBadShape)
		}
	}

	out := newDense(len(rows), cols)
	for i = 0; i < len(rows); i++ {
		copy(out.data[i*cols:(i+1)*cols], rows[i])
	}

	return out, nil
}

// FromInts builds a Dense from a 0/1 integer table; any non-zero cell is true.
// Ragged input → ErrBadShape. Complexity: O(r*c).
func FromInts(rows [][]int) (*Dense, error) {
	if len(rows) == 0 {
		return newDense(0, 0), nil
	}
	cols := len(rows[0])
	out := newDense(len(rows), cols)

	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, relationErrorf("FromInts", ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = rows[i][j] != 0
		}
	}

	return out, nil
}

// Identity returns the diagonal relation Δ over n elements (i Δ j ⇔ i == j).
// Complexity: O(n²) allocation, O(n) writes.
func Identity(n int) (*Dense, error) {
	if n < 0 {
		return nil, relationErrorf("Identity", ErrBadShape)
	}
	out := newDense(n, n)
	for i := 0; i < n; i++ {
		out.data[i*n+i] = true
	}

	return out, nil
}

// Full returns the total relation over n elements (every cell true).
// Complexity: O(n²).
func Full(n int) (*Dense, error) {
	if n < 0 {
		return nil, relationErrorf("Full", ErrBadShape)
	}
	out := newDense(n, n)
	for i := range out.data {
		out.data[i] = true
	}

	return out, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Size returns the order n of a square relation (equal to Rows()).
func (m *Dense) Size() int { return m.r }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bound-checks (row,col) and computes the row-major offset.
// Returns the bare ErrOutOfRange; public methods add coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
// Never panics on out-of-range. Complexity: O(1).
func (m *Dense) At(row, col int) (bool, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return false, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set writes v at (row, col) or returns ErrOutOfRange. Complexity: O(1).
func (m *Dense) Set(row, col int, v bool) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; mutations of the copy never reach m.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is the typed variant of Clone used by kernels.
func (m *Dense) cloneDense() *Dense {
	buf := make([]bool, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]bool, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]bool, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]bool, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]bool, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with vals.
// Errors: ErrOutOfRange for a bad index, ErrDimensionMismatch when len(vals) != Cols().
func (m *Dense) SetRow(i int, vals []bool) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, 0, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// SetCol overwrites column j with vals.
// Errors: ErrOutOfRange for a bad index, ErrDimensionMismatch when len(vals) != Rows().
func (m *Dense) SetCol(j int, vals []bool) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxSetCol, 0, j, ErrOutOfRange)
	}
	if len(vals) != m.r {
		return denseErrorf(ctxSetCol, 0, j, ErrDimensionMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = vals[i]
	}

	return nil
}

// Transpose returns a new c×r matrix with out[j,i] = m[i,j].
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	out := newDense(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out
}

// Equal reports whether other has the same shape and identical cells.
// A nil other is never equal. Complexity: O(r*c).
func (m *Dense) Equal(other Matrix) bool {
	if other == nil || m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	if d, ok := other.(*Dense); ok {
		for k := range m.data {
			if m.data[k] != d.data[k] {
				return false
			}
		}
		return true
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// Count returns the number of true cells (|R| as a set of pairs).
// Complexity: O(r*c).
func (m *Dense) Count() int {
	var n int
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}

// ToRows exports the matrix as a fresh [][]bool table.
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]bool {
	out := make([][]bool, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]bool, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders the matrix as rows of 0/1 for debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] {
				sb.WriteString(_fmtTrue)
			} else {
				sb.WriteString(_fmtFalse)
			}
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
