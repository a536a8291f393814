// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/numeric"
	"github.com/stretchr/testify/require"
)

func TestMat_MaxMin(t *testing.T) {
	t.Parallel()

	m := matrix.Mat2x3[int]{{4, -9, 2}, {7, 0, 3}}
	require.Equal(t, 7, matrix.Max(m))
	require.Equal(t, -9, matrix.Min(m))

	f := matrix.Identity4[float64]()
	require.Equal(t, 1.0, matrix.Max(f))
	require.Equal(t, 0.0, matrix.Min(f))

	f[2][1] = math.NaN()
	require.True(t, math.IsNaN(matrix.Max(f)))
	require.True(t, math.IsNaN(matrix.Min(f)))
}

func TestMat_RemAssign(t *testing.T) {
	t.Parallel()

	m := matrix.Mat2x2[int]{{7, -7}, {9, 10}}
	require.NoError(t, matrix.RemAssign(&m, matrix.Mat2x2[int]{{3, 3}, {4, 5}}))
	require.Equal(t, matrix.Mat2x2[int]{{1, -1}, {1, 0}}, m)

	u := matrix.Mat3x2[uint8]{{10, 11}, {12, 13}, {14, 15}}
	require.NoError(t, matrix.RemScalarAssign(&u, 4))
	require.Equal(t, matrix.Mat3x2[uint8]{{2, 3}, {0, 1}, {2, 3}}, u)
}

func TestMat_RemAssign_Errors(t *testing.T) {
	t.Parallel()

	orig := matrix.Mat2x3[int]{{1, 2, 3}, {4, 5, 6}}
	m := orig

	err := matrix.RemAssign(&m, matrix.Mat2x3[int]{{1, 1, 1}, {1, 0, 1}})
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	var de *numeric.DivisorError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 4, de.Index) // row 1, col 1
	require.Equal(t, orig, m)

	require.ErrorIs(t, matrix.RemScalarAssign(&m, 0), numeric.ErrDivisionByZero)
	require.Equal(t, orig, m)

	err = matrix.RemAssign(&m, matrix.Mat3x2[int]{{1, 1}, {1, 1}, {1, 1}})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	require.Equal(t, orig, m)
}
