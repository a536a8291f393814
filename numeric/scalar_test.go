// SPDX-License-Identifier: MIT

package numeric_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/vecmat/numeric"
	"github.com/stretchr/testify/require"
)

type meters float64

type count uint16

func TestIsIntegral(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.IsIntegral[int]())
	require.True(t, numeric.IsIntegral[int8]())
	require.True(t, numeric.IsIntegral[uint64]())
	require.True(t, numeric.IsIntegral[count]())
	require.False(t, numeric.IsIntegral[float32]())
	require.False(t, numeric.IsIntegral[float64]())
	require.False(t, numeric.IsIntegral[meters]())
	require.False(t, numeric.IsIntegral[complex64]())
	require.False(t, numeric.IsIntegral[complex128]())
}

func TestCheckDivisor(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, numeric.CheckDivisor(0), numeric.ErrDivisionByZero)
	require.ErrorIs(t, numeric.CheckDivisor(count(0)), numeric.ErrDivisionByZero)
	require.NoError(t, numeric.CheckDivisor(3))
	// IEEE-754 kinds define x/0, so the check never fails for them.
	require.NoError(t, numeric.CheckDivisor(0.0))
	require.NoError(t, numeric.CheckDivisor(complex64(0)))
}

func TestCheckDivisors_ReportsFirstZero(t *testing.T) {
	t.Parallel()

	err := numeric.CheckDivisors([]int{4, 0, 2, 0})
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)

	var de *numeric.DivisorError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 1, de.Index)
	require.Equal(t, "divisor[1]: vecmat: integer division by zero", err.Error())

	require.NoError(t, numeric.CheckDivisors([]int{1, 2, 3}))
	require.NoError(t, numeric.CheckDivisors([]float64{0, 0}))
	require.NoError(t, numeric.CheckDivisors([]int(nil)))
}

func TestIsComplex(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.IsComplex[complex64]())
	require.True(t, numeric.IsComplex[complex128]())
	require.False(t, numeric.IsComplex[float64]())
	require.False(t, numeric.IsComplex[int]())
	require.False(t, numeric.IsComplex[meters]())
}
