// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/numeric"
	"github.com/stretchr/testify/require"
)

const sampleAttempts = 256

func nonZero(rng *rand.Rand) float64 {
	for {
		x := rng.NormFloat64() * 10
		if x > 1e-3 || x < -1e-3 {
			return x
		}
	}
}

func randMat3x4(rng *rand.Rand) matrix.Mat3x4[float64] {
	var m matrix.Mat3x4[float64]
	for i := range m {
		for j := range m[i] {
			m[i][j] = nonZero(rng)
		}
	}

	return m
}

func randMat4x4(rng *rand.Rand) matrix.Mat4x4[float64] {
	var m matrix.Mat4x4[float64]
	for i := range m {
		for j := range m[i] {
			m[i][j] = nonZero(rng)
		}
	}

	return m
}

// (A / B)ᵀ == Aᵀ / Bᵀ: elementwise division commutes with transposition.
func TestMat_DivCommutesWithTranspose(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xBEE))
	for k := 0; k < sampleAttempts; k++ {
		a, b := randMat4x4(rng), randMat4x4(rng)
		require.Equal(t, a.Div(b).Transpose(), a.Transpose().Div(b.Transpose()))

		c, d := randMat3x4(rng), randMat3x4(rng)
		require.Equal(t, c.Div(d).Transpose(), c.Transpose().Div(d.Transpose()))
	}
}

func TestMat_DivThenMul_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xBEF))
	tol := numeric.WithRelativeTolerance(1e-12)
	for k := 0; k < sampleAttempts; k++ {
		a, b := randMat3x4(rng), randMat3x4(rng)
		s := nonZero(rng)

		require.True(t, a.Div(b).Mul(b).ApproxEqual(a, tol))
		require.True(t, a.DivScalar(s).MulScalar(s).ApproxEqual(a, tol))
	}
}

func TestMat_AssignMutatesOnlyReceiver(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(0xBF0))
	for k := 0; k < sampleAttempts; k++ {
		a, b := randMat4x4(rng), randMat4x4(rng)
		a0, b0 := a, b

		viaOp := a.Div(b)
		require.Equal(t, a0, a)
		require.Equal(t, b0, b)

		a.DivAssign(b)
		require.Equal(t, b0, b)
		require.Equal(t, viaOp, a)
	}
}
