// SPDX-License-Identifier: MIT

// Package numeric: functional configuration for approximate comparison.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper that resolves a ...Option list.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package numeric

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultRelativeTolerance scales with the larger operand magnitude.
	// Zero disables the relative test (absolute epsilon only).
	DefaultRelativeTolerance = 0.0

	// DefaultNaNEqual controls whether NaN compares equal to NaN.
	DefaultNaNEqual = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "numeric: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "numeric: WithRelativeTolerance: tol must be finite, non-negative"
)

// Option mutates Options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective comparison policy after applying Option setters.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	relTol   float64 // >= 0; DefaultRelativeTolerance
	nanEqual bool    // DefaultNaNEqual
}

// WithEpsilon sets the absolute tolerance: |a-b| <= eps ⇒ equal.
// Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-9 suits float64 data of unit magnitude; use ~1e-5 for float32.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelativeTolerance sets tol so that |a-b| <= tol*max(|a|,|b|) ⇒ equal.
// The relative test is an alternative to the absolute one, not a replacement.
// Panics when tol is NaN, ±Inf or negative.
func WithRelativeTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = tol }
}

// WithNaNEqual makes NaN compare equal to NaN (useful when asserting on
// IEEE-754 division-by-zero results such as 0/0).
func WithNaNEqual() Option {
	return func(o *Options) { o.nanEqual = true }
}

// WithNaNDistinct restores the IEEE-754 rule NaN != NaN. This is the default.
func WithNaNDistinct() Option {
	return func(o *Options) { o.nanEqual = false }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelativeTolerance returns the effective relative tolerance (0 = disabled).
func (o Options) RelativeTolerance() float64 { return o.relTol }

// NaNEqual reports whether NaN compares equal to NaN.
func (o Options) NaNEqual() bool { return o.nanEqual }

func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		relTol:   DefaultRelativeTolerance,
		nanEqual: DefaultNaNEqual,
	}
}

// gatherOptions applies opts in order over defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
