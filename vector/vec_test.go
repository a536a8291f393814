// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vecmat/numeric"
	"github.com/katalvlaran/vecmat/vector"
	"github.com/stretchr/testify/require"
)

func TestVec2_DivAssign_Scenario(t *testing.T) {
	t.Parallel()

	v := vector.Vec2[float64]{4.0, 9.0}
	o := vector.Vec2[float64]{2.0, 3.0}
	v.DivAssign(o)

	require.Equal(t, vector.Vec2[float64]{2.0, 3.0}, v)
	require.Equal(t, vector.Vec2[float64]{2.0, 3.0}, o, "operand must stay unchanged")
}

func TestVec2_DivAssign_ByZero_IEEE(t *testing.T) {
	t.Parallel()

	v := vector.Vec2[float64]{1.0, 1.0}
	v.DivAssign(vector.Vec2[float64]{0.0, 1.0})

	require.True(t, math.IsInf(v.X(), 1))
	require.Equal(t, 1.0, v.Y())
}

func TestVec2_DivAssign_ByZero_IntegerFaults(t *testing.T) {
	t.Parallel()

	v := vector.Vec2[int]{1, 1}
	require.Panics(t, func() { v.DivAssign(vector.Vec2[int]{0, 1}) })
	require.Panics(t, func() { v.DivScalarAssign(0) })
}

func TestVec_CheckedDivision(t *testing.T) {
	t.Parallel()

	v := vector.Vec3[int]{6, 8, 10}
	err := v.DivAssignChecked(vector.Vec3[int]{2, 0, 5})
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	require.Contains(t, err.Error(), "Vec3.DivAssignChecked")
	require.Equal(t, vector.Vec3[int]{6, 8, 10}, v, "receiver untouched on error")

	require.NoError(t, v.DivAssignChecked(vector.Vec3[int]{2, 4, 5}))
	require.Equal(t, vector.Vec3[int]{3, 2, 2}, v)

	_, err = v.DivScalarChecked(0)
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
	got, err := v.DivScalarChecked(2)
	require.NoError(t, err)
	require.Equal(t, vector.Vec3[int]{1, 1, 1}, got)
	require.Equal(t, vector.Vec3[int]{3, 2, 2}, v)

	q, err := vector.Vec4[int]{8, 6, 4, 2}.DivChecked(vector.Vec4[int]{2, 2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, vector.Vec4[int]{4, 3, 2, 1}, q)

	w := vector.Vec2[int]{1, 2}
	require.ErrorIs(t, w.DivScalarAssignChecked(0), numeric.ErrDivisionByZero)
	require.Equal(t, vector.Vec2[int]{1, 2}, w)

	// Floats never fail the check; the IEEE result is produced.
	f, err := vector.Vec2[float64]{1, -1}.DivScalarChecked(0)
	require.NoError(t, err)
	require.True(t, math.IsInf(f[0], 1))
	require.True(t, math.IsInf(f[1], -1))
}

func TestVec3_CompoundAssignment(t *testing.T) {
	t.Parallel()

	v := vector.New3(1.0, 2.0, 3.0)
	v.AddAssign(vector.Vec3[float64]{1, 1, 1})
	require.Equal(t, vector.Vec3[float64]{2, 3, 4}, v)
	v.SubAssign(vector.Vec3[float64]{2, 2, 2})
	require.Equal(t, vector.Vec3[float64]{0, 1, 2}, v)
	v.MulAssign(vector.Vec3[float64]{5, 5, 0.5})
	require.Equal(t, vector.Vec3[float64]{0, 5, 1}, v)

	v.AddScalarAssign(1)
	require.Equal(t, vector.Vec3[float64]{1, 6, 2}, v)
	v.SubScalarAssign(1)
	require.Equal(t, vector.Vec3[float64]{0, 5, 1}, v)
	v.MulScalarAssign(2)
	require.Equal(t, vector.Vec3[float64]{0, 10, 2}, v)
	v.DivScalarAssign(4)
	require.Equal(t, vector.Vec3[float64]{0, 2.5, 0.5}, v)
}

func TestVec4_NonAssigning_LeavesOperandsUnchanged(t *testing.T) {
	t.Parallel()

	a := vector.Vec4[int32]{10, 20, 30, 40}
	b := vector.Vec4[int32]{1, 2, 3, 4}

	require.Equal(t, vector.Vec4[int32]{11, 22, 33, 44}, a.Add(b))
	require.Equal(t, vector.Vec4[int32]{9, 18, 27, 36}, a.Sub(b))
	require.Equal(t, vector.Vec4[int32]{10, 40, 90, 160}, a.Mul(b))
	require.Equal(t, vector.Vec4[int32]{10, 10, 10, 10}, a.Div(b))
	require.Equal(t, vector.Vec4[int32]{12, 22, 32, 42}, a.AddScalar(2))
	require.Equal(t, vector.Vec4[int32]{8, 18, 28, 38}, a.SubScalar(2))
	require.Equal(t, vector.Vec4[int32]{20, 40, 60, 80}, a.MulScalar(2))
	require.Equal(t, vector.Vec4[int32]{5, 10, 15, 20}, a.DivScalar(2))
	require.Equal(t, vector.Vec4[int32]{-10, -20, -30, -40}, a.Neg())

	require.Equal(t, vector.Vec4[int32]{10, 20, 30, 40}, a)
	require.Equal(t, vector.Vec4[int32]{1, 2, 3, 4}, b)
}

func TestVec_NonAssigningMatchesAssigning(t *testing.T) {
	t.Parallel()

	a := vector.Vec3[float64]{7, -3, 0.25}
	b := vector.Vec3[float64]{2, 4, -8}

	want := a
	want.DivAssign(b)
	require.Equal(t, want, a.Div(b))

	want = a
	want.MulScalarAssign(3)
	require.Equal(t, want, a.MulScalar(3))
}

func TestVec_ConstructionAndAccess(t *testing.T) {
	t.Parallel()

	require.Equal(t, vector.Vec2[int]{7, 7}, vector.Splat2(7))
	require.Equal(t, vector.Vec3[int]{7, 7, 7}, vector.Splat3(7))
	require.Equal(t, vector.Vec4[float32]{0.5, 0.5, 0.5, 0.5}, vector.Splat4[float32](0.5))

	v4 := vector.New4(1, 2, 3, 4)
	require.Equal(t, 1, v4.X())
	require.Equal(t, 2, v4.Y())
	require.Equal(t, 3, v4.Z())
	require.Equal(t, 4, v4.W())
	x, y, z, w := v4.Components()
	require.Equal(t, []int{1, 2, 3, 4}, []int{x, y, z, w})
	require.Equal(t, 4, v4.Len())

	v3, err := vector.FromSlice3([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, vector.Vec3[float64]{1, 2, 3}, v3)

	_, err = vector.FromSlice3([]float64{1, 2})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	require.EqualError(t, err, "FromSlice3: got 2 elements, want 3: vecmat: dimension mismatch")
	_, err = vector.FromSlice2([]int{1, 2, 3})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
	_, err = vector.FromSlice4([]int(nil))
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)

	v2 := vector.New2(1, 2)
	a, err := v2.At(1)
	require.NoError(t, err)
	require.Equal(t, 2, a)
	_, err = v2.At(2)
	require.ErrorIs(t, err, numeric.ErrOutOfRange)
	require.EqualError(t, err, "Vec2.At(2): vecmat: index out of range")
	_, err = v2.At(-1)
	require.ErrorIs(t, err, numeric.ErrOutOfRange)

	require.NoError(t, v2.Set(0, 9))
	require.Equal(t, vector.Vec2[int]{9, 2}, v2)
	require.ErrorIs(t, v2.Set(5, 1), numeric.ErrOutOfRange)
	require.Equal(t, vector.Vec2[int]{9, 2}, v2)
}

func TestVec_ReductionsAndComparison(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, vector.Vec4[int]{1, 2, 3, 4}.Sum())
	require.Equal(t, complex(3, 3), vector.Vec2[complex128]{1 + 2i, 2 + 1i}.Sum())

	a := vector.Vec3[float64]{0.1, 0.2, 0.3}
	b := vector.Vec3[float64]{0.1, 0.2, 0.1 + 0.2}
	require.False(t, a.Equal(b)) // 0.1+0.2 != 0.3 in binary64
	require.True(t, a.ApproxEqual(b))
	require.False(t, a.ApproxEqual(vector.Vec3[float64]{0.1, 0.2, 0.31}))
	require.True(t, a.ApproxEqual(vector.Vec3[float64]{0.1, 0.2, 0.31}, numeric.WithEpsilon(0.05)))

	nan := vector.Vec2[float64]{math.NaN(), 1}
	require.False(t, nan.Equal(nan))
	require.True(t, nan.ApproxEqual(nan, numeric.WithNaNEqual()))

	big := vector.Vec2[int64]{1 << 62, 1}
	require.False(t, big.ApproxEqual(vector.Vec2[int64]{1<<62 + 1, 1}))
}

func TestVec_Generic_Interface(t *testing.T) {
	t.Parallel()

	vs := []vector.Vector[float64]{
		vector.Vec2[float64]{1, 2},
		vector.Vec3[float64]{1, 2, 3},
		vector.Vec4[float64]{1, 2, 3, 4},
	}
	for k, v := range vs {
		require.Equal(t, k+2, v.Len())
		last, err := v.At(v.Len() - 1)
		require.NoError(t, err)
		require.Equal(t, float64(v.Len()), last)
	}
}

type celsius float32

func TestVec_NamedElementType(t *testing.T) {
	t.Parallel()

	v := vector.Vec2[celsius]{10, 20}
	v.MulScalarAssign(1.5)
	require.Equal(t, vector.Vec2[celsius]{15, 30}, v)
	require.Equal(t, "(15, 30)", v.String())
}
