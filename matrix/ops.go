// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Quotient returns the element-wise num/den.
//
// A zero or negative denominator yields +Inf for that cell, so a road
// with no usable speed becomes impassable rather than producing NaN or a
// negative cost.
//
// Errors: ErrDimensionMismatch when shapes differ.
// Complexity: O(r*c).
func Quotient(num, den *Dense) (*Dense, error) {
	if num.r != den.r || num.c != den.c {
		return nil, fmt.Errorf("Quotient %dx%d / %dx%d: %w", num.r, num.c, den.r, den.c, ErrDimensionMismatch)
	}
	out := &Dense{r: num.r, c: num.c, data: make([]float64, len(num.data))}
	var (
		k    int
		d, q float64
	)
	for k = range num.data {
		d = den.data[k]
		if d <= 0 {
			out.data[k] = math.Inf(1)
			continue
		}
		q = num.data[k] / d
		if math.IsNaN(q) {
			// Inf/Inf
			q = math.Inf(1)
		}
		out.data[k] = q
	}

	return out, nil
}
