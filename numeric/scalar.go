// SPDX-License-Identifier: MIT

package numeric

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Scalar is the element constraint of every vecmat container.
// All members are copyable, comparable with ==, and closed under + - * /.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is the ordered subset of Scalar. Complex kinds are excluded: they
// have no < and therefore no Max or Min.
type Real interface {
	constraints.Integer | constraints.Float
}

// Integer is the subset of Scalar that has a remainder operator.
type Integer interface {
	constraints.Integer
}

// IsIntegral reports whether T truncates on division, i.e. T is one of the
// signed or unsigned integer kinds. Floating and complex kinds report false.
//
// Complexity: O(1), no allocation.
func IsIntegral[T Scalar]() bool {
	var half T = 1
	half /= 2

	return half == 0
}

// IsComplex reports whether T is complex64, complex128 or a named type over them.
func IsComplex[T Scalar]() bool {
	k := reflect.TypeFor[T]().Kind()

	return k == reflect.Complex64 || k == reflect.Complex128
}

// CheckDivisor returns ErrDivisionByZero when d is zero and T is integral.
// For floating and complex T it always returns nil: their division by zero is
// well defined (±Inf / NaN).
func CheckDivisor[T Scalar](d T) error {
	if d == 0 && IsIntegral[T]() {
		return ErrDivisionByZero
	}

	return nil
}

// CheckDivisors applies CheckDivisor to every element of ds and returns the
// first violation wrapped with its index.
// Implementation:
//   - Stage 1: short-circuit for non-integral T (no scan needed).
//   - Stage 2: scan left→right; the first zero wins (deterministic).
//
// Complexity: O(len(ds)).
func CheckDivisors[T Scalar](ds []T) error {
	if !IsIntegral[T]() {
		return nil
	}
	for i, d := range ds {
		if d == 0 {
			return &DivisorError{Index: i}
		}
	}

	return nil
}

// DivisorError locates the zero divisor found by CheckDivisors.
// It unwraps to ErrDivisionByZero.
type DivisorError struct {
	Index int // flat (row-major for matrices) position of the zero divisor
}

// Error implements error.
func (e *DivisorError) Error() string {
	return "divisor[" + strconv.Itoa(e.Index) + "]: " + ErrDivisionByZero.Error()
}

// Unwrap lets errors.Is match ErrDivisionByZero.
func (e *DivisorError) Unwrap() error { return ErrDivisionByZero }
