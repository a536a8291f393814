// SPDX-License-Identifier: MIT

// Package numeric defines the element constraint, sentinel errors, division
// policy and approximate-comparison configuration shared by the vecmat
// container packages (vector, matrix).
//
// Element types:
//   - Scalar admits every Go integer, floating-point and complex kind,
//     including named types built on them (~int, ~float64, ...).
//
// Division policy:
//   - Unchecked operators (Div, DivAssign, DivScalar, ...) defer entirely to
//     the element type: IEEE-754 for floats (±Inf, NaN), Go complex division
//     for complex kinds, and the runtime fault "integer divide by zero" for
//     integer kinds.
//   - Checked operators (DivChecked, DivAssignChecked, ...) consult
//     CheckDivisor/CheckDivisors and return ErrDivisionByZero for integral
//     element types before anything is mutated. Floating and complex kinds
//     never fail the check.
//
// Comparison:
//   - ApproxEqual / ApproxEqualSlices compare with an absolute epsilon and an
//     optional relative tolerance, configured through functional options
//     (WithEpsilon, WithRelativeTolerance, WithNaNEqual).
package numeric
