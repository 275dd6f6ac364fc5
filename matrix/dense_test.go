// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	z, err := matrix.NewSquare(0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	require.NoError(t, m.Set(1, 0, math.Inf(1)), "+Inf marks an impassable edge")
	require.NoError(t, m.Set(1, 1, -2), "negatives are the consumer's policy")

	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_CloneFillApply(t *testing.T) {
	m, _ := matrix.NewSquare(2)
	require.NoError(t, m.Fill(3))
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 3.0, v, "clone is independent")

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * float64(i+j) }))
	assert.Equal(t, "[0, 3]\n[3, 6]\n", m.String())

	assert.ErrorIs(t, m.Fill(math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Apply(func(int, int, float64) float64 { return math.NaN() }), matrix.ErrNaNInf)
}

func TestQuotient(t *testing.T) {
	dist, _ := matrix.NewSquare(2)
	speed, _ := matrix.NewSquare(2)
	require.NoError(t, dist.Set(0, 1, 30))
	require.NoError(t, speed.Set(0, 1, 60))
	require.NoError(t, dist.Set(1, 0, 10))

	q, err := matrix.Quotient(dist, speed)
	require.NoError(t, err)
	v, _ := q.At(0, 1)
	assert.Equal(t, 0.5, v)
	v, _ = q.At(1, 0)
	assert.True(t, math.IsInf(v, 1), "zero speed is impassable")

	wide, _ := matrix.NewDense(2, 3)
	_, err = matrix.Quotient(dist, wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
