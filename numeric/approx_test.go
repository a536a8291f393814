// SPDX-License-Identifier: MIT

package numeric_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/vecmat/numeric"
	"github.com/stretchr/testify/require"
)

func TestApproxEqual_Floats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b float64
		opts []numeric.Option
		want bool
	}{
		{"exact", 1.5, 1.5, nil, true},
		{"within default eps", 1, 1 + 1e-12, nil, true},
		{"outside default eps", 1, 1 + 1e-6, nil, false},
		{"custom eps", 1, 1.05, []numeric.Option{numeric.WithEpsilon(0.1)}, true},
		{"relative tolerance", 1e12, 1e12 + 10, []numeric.Option{numeric.WithRelativeTolerance(1e-9)}, true},
		{"relative tolerance too tight", 1e12, 1e12 + 10, []numeric.Option{numeric.WithRelativeTolerance(1e-13)}, false},
		{"equal infinities", math.Inf(1), math.Inf(1), nil, true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), nil, false},
		{"inf vs finite", math.Inf(1), 1e308, []numeric.Option{numeric.WithEpsilon(1e300)}, false},
		{"nan distinct by default", math.NaN(), math.NaN(), nil, false},
		{"nan equal opt-in", math.NaN(), math.NaN(), []numeric.Option{numeric.WithNaNEqual()}, true},
		{"nan vs number", math.NaN(), 0, []numeric.Option{numeric.WithNaNEqual()}, false},
		{"nan distinct restores default", math.NaN(), math.NaN(), []numeric.Option{numeric.WithNaNEqual(), numeric.WithNaNDistinct()}, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, numeric.ApproxEqual(tc.a, tc.b, tc.opts...))
		})
	}
}

func TestApproxEqual_IntegersAndComplex(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.ApproxEqual(7, 7))
	require.False(t, numeric.ApproxEqual(7, 8))
	require.True(t, numeric.ApproxEqual(7, 8, numeric.WithEpsilon(1)))
	// Unsigned difference must not wrap around.
	require.False(t, numeric.ApproxEqual(uint8(0), uint8(255), numeric.WithEpsilon(2)))
	require.True(t, numeric.ApproxEqual(uint8(255), uint8(254), numeric.WithEpsilon(1)))
	require.True(t, numeric.ApproxEqual(meters(2), meters(2+1e-12)))
	// Signed values beyond 2^53 collapse in float64; the gap must be exact.
	require.False(t, numeric.ApproxEqual(int64(1<<62), int64(1<<62+1)))
	require.False(t, numeric.ApproxEqual(int64(9007199254740993), int64(9007199254740992)))
	require.True(t, numeric.ApproxEqual(int64(-1<<62), int64(-1<<62+1), numeric.WithEpsilon(1)))
	require.False(t, numeric.ApproxEqual(int64(math.MinInt64), int64(math.MaxInt64), numeric.WithEpsilon(1e18)))

	require.True(t, numeric.ApproxEqual(complex(1, 1), complex(1, 1+1e-12)))
	require.False(t, numeric.ApproxEqual(complex(1, 1), complex(1, 2)))
	require.True(t, numeric.ApproxEqual(cmplx.NaN(), cmplx.NaN(), numeric.WithNaNEqual()))
}

func TestApproxEqualSlices(t *testing.T) {
	t.Parallel()

	require.True(t, numeric.ApproxEqualSlices([]float64{1, 2}, []float64{1, 2 + 1e-12}))
	require.False(t, numeric.ApproxEqualSlices([]float64{1, 2}, []float64{1, 2.1}))
	require.False(t, numeric.ApproxEqualSlices([]float64{1, 2}, []float64{1}))
	require.True(t, numeric.ApproxEqualSlices[int](nil, nil))
}

func TestOptions_DefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	o := numeric.NewOptions()
	require.Equal(t, numeric.DefaultEpsilon, o.Epsilon())
	require.Equal(t, numeric.DefaultRelativeTolerance, o.RelativeTolerance())
	require.Equal(t, numeric.DefaultNaNEqual, o.NaNEqual())

	o = numeric.NewOptions(nil, numeric.WithEpsilon(0.5), numeric.WithRelativeTolerance(0.01), numeric.WithNaNEqual())
	require.Equal(t, 0.5, o.Epsilon())
	require.Equal(t, 0.01, o.RelativeTolerance())
	require.True(t, o.NaNEqual())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "numeric: WithEpsilon: eps must be finite, non-negative", func() {
		numeric.WithEpsilon(-1)
	})
	require.Panics(t, func() { numeric.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { numeric.WithEpsilon(math.Inf(1)) })
	require.PanicsWithValue(t, "numeric: WithRelativeTolerance: tol must be finite, non-negative", func() {
		numeric.WithRelativeTolerance(-0.1)
	})
}
