// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Fill: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with the Dense method and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors: ErrBadShape if rows < 0 or cols < 0.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix, the shape of a weight matrix for a
// graph with n vertices.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// inBounds reports whether (i,j) addresses a cell.
func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the element at (i,j).
//
// Errors: ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v to (i,j).
//
// Errors: ErrOutOfRange, ErrNaNInf (NaN only; ±Inf is accepted).
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Fill assigns v to every cell.
//
// Errors: ErrNaNInf.
func (m *Dense) Fill(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("Dense.Fill: %w", ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Apply replaces every cell (i,j) with fn(i, j, current).
// Cells for which fn returns NaN make Apply stop with ErrNaNInf; cells
// already visited keep their new values.
func (m *Dense) Apply(fn func(i, j int, v float64) float64) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := fn(i, j, m.data[i*m.c+j])
			if math.IsNaN(v) {
				return denseErrorf("Apply", i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return nil
}

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders the matrix one row per line: "[a, b]\n[c, d]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
