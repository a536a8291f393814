// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/cmplx"
	"reflect"
)

// ApproxEqual reports whether a and b are equal within the configured
// tolerance.
// Implementation:
//   - Stage 1: exact equality short-circuits (covers equal infinities).
//   - Stage 2: measure |a-b| and max(|a|,|b|) in float64 by element kind.
//   - Stage 3: NaN policy, then absolute epsilon, then relative tolerance.
//
// Behavior highlights:
//   - Integer kinds take the exact difference before projecting to float64,
//     so distinct integers never compare equal under a sub-unit epsilon.
//   - Complex kinds use the modulus of the difference.
//   - An infinite difference is never "approximately" zero.
//
// Complexity: O(1).
func ApproxEqual[T Scalar](a, b T, opts ...Option) bool {
	return approxEqual(a, b, gatherOptions(opts...))
}

// ApproxEqualSlices compares a and b elementwise with ApproxEqual semantics.
// Slices of different length are never equal. Options are resolved once.
//
// Complexity: O(n).
func ApproxEqualSlices[T Scalar](a, b []T, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !approxEqual(a[i], b[i], o) {
			return false
		}
	}

	return true
}

func approxEqual[T Scalar](a, b T, o Options) bool {
	if a == b {
		return true
	}
	m := measure(a, b)
	if m.nanA || m.nanB {
		return o.nanEqual && m.nanA && m.nanB
	}
	if math.IsInf(m.diff, 0) {
		return false
	}
	if m.diff <= o.eps {
		return true
	}

	return o.relTol > 0 && m.diff <= o.relTol*m.scale
}

// gap is |a-b| and max(|a|,|b|) projected onto float64.
type gap struct {
	diff, scale float64
	nanA, nanB  bool
}

// measure dispatches on the reflected kind so that named element types
// (type Meters float64) take the same path as their underlying kind.
func measure[T Scalar](a, b T) gap {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, y := ra.Int(), rb.Int()
		// Subtract in uint64 before converting: distinct values above 2^53
		// may round to the same float64.
		d := uint64(x) - uint64(y)
		if y > x {
			d = uint64(y) - uint64(x)
		}
		return gap{diff: float64(d), scale: math.Max(math.Abs(float64(x)), math.Abs(float64(y)))}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, y := ra.Uint(), rb.Uint()
		d := x - y
		if y > x {
			d = y - x
		}
		return gap{diff: float64(d), scale: float64(max(x, y))}
	case reflect.Float32, reflect.Float64:
		x, y := ra.Float(), rb.Float()
		return gap{
			diff:  math.Abs(x - y),
			scale: math.Max(math.Abs(x), math.Abs(y)),
			nanA:  math.IsNaN(x),
			nanB:  math.IsNaN(y),
		}
	default: // complex64, complex128
		x, y := ra.Complex(), rb.Complex()
		return gap{
			diff:  cmplx.Abs(x - y),
			scale: math.Max(cmplx.Abs(x), cmplx.Abs(y)),
			nanA:  cmplx.IsNaN(x),
			nanB:  cmplx.IsNaN(y),
		}
	}
}
