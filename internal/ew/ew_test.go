// SPDX-License-Identifier: MIT

package ew_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/internal/ew"
	"github.com/stretchr/testify/require"
)

// f64 hides float64 from the kernels' type assertion, forcing the generic
// loop. Comparing []float64 against []f64 checks fast path == fallback.
type f64 float64

func toF64(xs []float64) []f64 {
	out := make([]f64, len(xs))
	for i, x := range xs {
		out[i] = f64(x)
	}

	return out
}

func requireSameBits(t *testing.T, fast []float64, slow []f64) {
	t.Helper()
	require.Len(t, slow, len(fast))
	for i := range fast {
		require.Equalf(t, math.Float64bits(fast[i]), math.Float64bits(float64(slow[i])),
			"index %d: fast=%v slow=%v", i, fast[i], slow[i])
	}
}

func randomSlice(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64() * 100
	}

	return out
}

func TestKernels_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xBEE))
	for _, n := range []int{2, 3, 4, 6, 8, 9, 12, 16} {
		a, b := randomSlice(rng, n), randomSlice(rng, n)
		s := rng.NormFloat64()

		fast, slow := append([]float64(nil), a...), toF64(a)
		ew.Add(fast, b)
		ew.Add(slow, toF64(b))
		requireSameBits(t, fast, slow)

		fast, slow = append([]float64(nil), a...), toF64(a)
		ew.Mul(fast, b)
		ew.Mul(slow, toF64(b))
		requireSameBits(t, fast, slow)

		fast, slow = append([]float64(nil), a...), toF64(a)
		ew.MulScalar(fast, s)
		ew.MulScalar(slow, f64(s))
		requireSameBits(t, fast, slow)
	}
}

func TestKernels_Elementwise(t *testing.T) {
	t.Parallel()

	dst := []int{10, 20, 30}
	ew.Add(dst, []int{1, 2, 3})
	require.Equal(t, []int{11, 22, 33}, dst)
	ew.Sub(dst, []int{1, 2, 3})
	require.Equal(t, []int{10, 20, 30}, dst)
	ew.Mul(dst, []int{2, 3, 4})
	require.Equal(t, []int{20, 60, 120}, dst)
	ew.Div(dst, []int{2, 3, 4})
	require.Equal(t, []int{10, 20, 30}, dst)
	// Integer division truncates toward zero.
	ew.Div(dst, []int{3, 3, 7})
	require.Equal(t, []int{3, 6, 4}, dst)
}

func TestKernels_Scalar(t *testing.T) {
	t.Parallel()

	dst := []float64{1, 2, 3, 4}
	ew.AddScalar(dst, 1)
	require.Equal(t, []float64{2, 3, 4, 5}, dst)
	ew.SubScalar(dst, 2)
	require.Equal(t, []float64{0, 1, 2, 3}, dst)
	ew.MulScalar(dst, 4)
	require.Equal(t, []float64{0, 4, 8, 12}, dst)
	ew.DivScalar(dst, 8)
	require.Equal(t, []float64{0, 0.5, 1, 1.5}, dst)
	ew.Neg(dst)
	require.Equal(t, []float64{math.Copysign(0, -1), -0.5, -1, -1.5}, dst)
	ew.Fill(dst, 7)
	require.Equal(t, []float64{7, 7, 7, 7}, dst)
	require.Equal(t, 28.0, ew.Sum(dst))
	require.Equal(t, 0, ew.Sum([]int(nil)))
}

func TestKernels_DivisionByZeroIsNative(t *testing.T) {
	t.Parallel()

	dst := []float64{1, -1, 0}
	ew.Div(dst, []float64{0, 0, 0})
	require.True(t, math.IsInf(dst[0], 1))
	require.True(t, math.IsInf(dst[1], -1))
	require.True(t, math.IsNaN(dst[2]))

	require.Panics(t, func() { ew.Div([]int{1}, []int{0}) })
	require.Panics(t, func() { ew.DivScalar([]uint8{1}, 0) })

	c := []complex128{1 + 1i}
	require.NotPanics(t, func() { ew.DivScalar(c, 0) })
}

func TestKernels_LengthMismatchPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "ew: operand length mismatch", func() {
		ew.Add([]float64{1, 2}, []float64{1})
	})
	require.Panics(t, func() { ew.Sub([]int{1}, []int{1, 2}) })
	require.Panics(t, func() { ew.Mul([]int{1}, []int{}) })
	require.Panics(t, func() { ew.Div([]int{1}, []int{}) })
}

func TestKernels_MaxMin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       []float64
		max, min float64
	}{
		{"single", []float64{3}, 3, 3},
		{"mixed signs", []float64{-2, 5, 0, 1}, 5, -2},
		{"max last", []float64{1, 2, 3, 4}, 4, 1},
		{"infinities", []float64{math.Inf(-1), 0, math.Inf(1)}, math.Inf(1), math.Inf(-1)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.max, ew.Max(tc.in))
			require.Equal(t, tc.min, ew.Min(tc.in))
		})
	}

	require.Equal(t, uint8(255), ew.Max([]uint8{0, 255, 7}))
	require.Equal(t, int8(-128), ew.Min([]int8{0, -128, 127}))
	require.Equal(t, 0, ew.Max([]int(nil)))
	require.True(t, math.IsNaN(ew.Max([]float64{1, math.NaN(), 3})))
	require.True(t, math.IsNaN(ew.Min([]float64{math.NaN(), 1})))
}

func TestKernels_Rem(t *testing.T) {
	t.Parallel()

	dst := []int{7, -7, 9, 10}
	ew.Rem(dst, []int{3, 3, -4, 5})
	require.Equal(t, []int{1, -1, 1, 0}, dst)

	u := []uint16{10, 11, 12}
	ew.RemScalar(u, 4)
	require.Equal(t, []uint16{2, 3, 0}, u)

	require.Panics(t, func() { ew.Rem([]int{1}, []int{0}) })
	require.Panics(t, func() { ew.Rem([]int{1, 2}, []int{1}) })
}
