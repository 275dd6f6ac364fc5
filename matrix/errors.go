// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Callers match with errors.Is; contextual wrapping uses %w.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN value where an ordered number is required.
	ErrNaNInf = errors.New("matrix: NaN encountered")

	// ErrDimensionMismatch indicates operands of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
