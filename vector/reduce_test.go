// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/numeric"
	"github.com/katalvlaran/vecmat/vector"
	"github.com/stretchr/testify/require"
)

func TestVec_MaxMin(t *testing.T) {
	t.Parallel()

	require.Equal(t, 9, vector.Max(vector.Vec3[int]{4, 9, 2}))
	require.Equal(t, 2, vector.Min(vector.Vec3[int]{4, 9, 2}))
	require.Equal(t, 7.5, vector.Max(vector.Vec2[float64]{-1, 7.5}))
	require.Equal(t, -1.0, vector.Min(vector.Vec2[float64]{-1, 7.5}))
	require.Equal(t, uint8(4), vector.Max(vector.Vec4[uint8]{1, 2, 3, 4}))
	require.Equal(t, uint8(1), vector.Min(vector.Vec4[uint8]{1, 2, 3, 4}))

	// Ties and all-equal inputs.
	require.Equal(t, int64(5), vector.Max(vector.Splat4[int64](5)))

	require.True(t, math.IsNaN(vector.Max(vector.Vec3[float64]{1, math.NaN(), 2})))
}

func TestVec_RemAssign(t *testing.T) {
	t.Parallel()

	v := vector.Vec3[int]{7, -7, 9}
	require.NoError(t, vector.RemAssign(&v, vector.Vec3[int]{3, 3, 4}))
	require.Equal(t, vector.Vec3[int]{1, -1, 1}, v)

	w := vector.Vec4[uint32]{10, 11, 12, 13}
	require.NoError(t, vector.RemScalarAssign(&w, 5))
	require.Equal(t, vector.Vec4[uint32]{0, 1, 2, 3}, w)
}

func TestVec_RemAssign_Errors(t *testing.T) {
	t.Parallel()

	v := vector.Vec3[int]{7, 8, 9}
	err := vector.RemAssign(&v, vector.Vec3[int]{1, 0, 1})
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	var de *numeric.DivisorError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 1, de.Index)
	require.Equal(t, vector.Vec3[int]{7, 8, 9}, v)

	require.ErrorIs(t, vector.RemScalarAssign(&v, 0), numeric.ErrDivisionByZero)
	require.Equal(t, vector.Vec3[int]{7, 8, 9}, v)

	err = vector.RemAssign(&v, vector.Vec2[int]{1, 1})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	require.Equal(t, vector.Vec3[int]{7, 8, 9}, v)
}
