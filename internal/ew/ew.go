// SPDX-License-Identifier: MIT

// Package ew provides the elementwise kernels behind every vecmat container.
//
// Purpose:
//   - One generic algorithm per operator, parameterized only by slice length.
//     Vec2..Vec4 pass v[:], MatRxC pass each row m[i][:], so no shape has
//     its own hand-written loop.
//   - Keep loops deterministic (flat 0..n-1) and allocation-free.
//
// Design:
//   - Kernels mutate dst in place (compound assignment). Non-assigning
//     operators are built one level up as copy → assign → return.
//   - When T is exactly float64, Add, Mul and MulScalar dispatch to the
//     algo-vecmath in-place block kernels (runtime CPU feature selection). Results are
//     bitwise identical to the generic loop: + and * are correctly rounded per
//     element either way.
//   - Division is never rewritten as multiplication by a reciprocal.
//
// Contract:
//   - len(dst) == len(src) is a caller invariant (fixed array shapes make it
//     true by construction); a mismatch is a programmer error and panics.
package ew

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/vecmat/numeric"
)

const panicLenMismatch = "ew: operand length mismatch"

func mustSameLen(a, b int) {
	if a != b {
		panic(panicLenMismatch)
	}
}

// Add computes dst[i] += src[i].
func Add[T numeric.Scalar](dst, src []T) {
	mustSameLen(len(dst), len(src))
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// Sub computes dst[i] -= src[i].
func Sub[T numeric.Scalar](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i := range dst {
		dst[i] -= src[i]
	}
}

// Mul computes dst[i] *= src[i] (Hadamard product).
func Mul[T numeric.Scalar](dst, src []T) {
	mustSameLen(len(dst), len(src))
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlockInPlace(d, any(src).([]float64))
		return
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// Div computes dst[i] /= src[i] (Hadamard quotient).
// Division by zero follows T's native semantics; see package numeric.
func Div[T numeric.Scalar](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i := range dst {
		dst[i] /= src[i]
	}
}

// AddScalar computes dst[i] += s.
func AddScalar[T numeric.Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] += s
	}
}

// SubScalar computes dst[i] -= s.
func SubScalar[T numeric.Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] -= s
	}
}

// MulScalar computes dst[i] *= s.
func MulScalar[T numeric.Scalar](dst []T, s T) {
	if d, ok := any(dst).([]float64); ok {
		vecmath.ScaleBlockInPlace(d, any(s).(float64))
		return
	}
	for i := range dst {
		dst[i] *= s
	}
}

// DivScalar computes dst[i] /= s.
func DivScalar[T numeric.Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] /= s
	}
}

// Neg computes dst[i] = -dst[i]. Unsigned kinds wrap (two's complement).
func Neg[T numeric.Scalar](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// Fill sets every element of dst to s (broadcast construction).
func Fill[T numeric.Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}

// Sum folds src left→right with +. Returns the zero value for empty input.
func Sum[T numeric.Scalar](src []T) T {
	var acc T
	for _, v := range src {
		acc += v
	}

	return acc
}

// Max returns the largest element of src, or the zero value for empty input.
// A NaN anywhere in src makes the result NaN, as with the max builtin.
func Max[T numeric.Real](src []T) T {
	if len(src) == 0 {
		var zero T
		return zero
	}
	acc := src[0]
	for _, v := range src[1:] {
		acc = max(acc, v)
	}

	return acc
}

// Min returns the smallest element of src, or the zero value for empty input.
// A NaN anywhere in src makes the result NaN, as with the min builtin.
func Min[T numeric.Real](src []T) T {
	if len(src) == 0 {
		var zero T
		return zero
	}
	acc := src[0]
	for _, v := range src[1:] {
		acc = min(acc, v)
	}

	return acc
}

// Rem computes dst[i] %= src[i]. The result takes the sign of dst[i].
// A zero divisor is the Go runtime fault; callers validate first.
func Rem[T numeric.Integer](dst, src []T) {
	mustSameLen(len(dst), len(src))
	for i := range dst {
		dst[i] %= src[i]
	}
}

// RemScalar computes dst[i] %= s.
func RemScalar[T numeric.Integer](dst []T, s T) {
	for i := range dst {
		dst[i] %= s
	}
}
