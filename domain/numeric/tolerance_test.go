package numeric

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathkit/domain/core"
)

type toleranceCase struct {
	a, b, tolerance float64
}

var almostEqualCases = []toleranceCase{
	{5, 5, DefaultTolerance},
	{5, 5, 0},
	{2.2, 2.2, DefaultTolerance},
	{2.23, 2.29, 0.03},
	{1.001, 1.002, 0.001},
	{2.012, 2.013, 0.001},
	{0.000000001, 0.000000005, DefaultTolerance},
	{5000000.000000001, 5000000.000000005, DefaultTolerance},
	{5000000.0000011, 5000000.0000012, DefaultTolerance},
	{35.123418, 35.123417, 1e-7},
	{-0.0001, 0.0001, 0.0002},
	{1e6, 1e6 + 1, 1e-6},
	{math.Copysign(0, -1), 0, 0},
	{math.Inf(1), math.Inf(1), 0},
}

var notAlmostEqualCases = []toleranceCase{
	{5, -5, DefaultTolerance},
	{0.00000001, -0.00000001, DefaultTolerance},
	{3.2, 3.5, 0.02},
	{1.001, 1.002, 0.0001},
	{2.022, 2.013, 0.004},
	{0.00000001, 0.00000005, DefaultTolerance},
	{0.000016, 0.000015, 1e-7},
	{35.123418, 35.123417, 1e-8},
	{-0.025, 0.025, 0.049999999},
	{1, 0, 0.5},
	{0, 1e-9, 0},
	{math.Inf(1), math.Inf(-1), 1},
}

func TestAlmostEqual_WithinTolerance(t *testing.T) {
	for _, tc := range almostEqualCases {
		for _, sign := range []float64{1, -1} {
			got, err := AlmostEqual(sign*tc.a, sign*tc.b, tc.tolerance)
			require.NoError(t, err)
			assert.True(t, got, "AlmostEqual(%v, %v, %v)", sign*tc.a, sign*tc.b, tc.tolerance)
		}
	}
}

func TestAlmostEqual_OutsideTolerance(t *testing.T) {
	for _, tc := range notAlmostEqualCases {
		for _, sign := range []float64{1, -1} {
			got, err := AlmostEqual(sign*tc.a, sign*tc.b, tc.tolerance)
			require.NoError(t, err)
			assert.False(t, got, "AlmostEqual(%v, %v, %v)", sign*tc.a, sign*tc.b, tc.tolerance)
		}
	}
}

func TestAlmostEqual_NaN(t *testing.T) {
	nan := math.NaN()
	for _, tolerance := range []float64{0, 1e-3, DefaultTolerance, 1, math.Inf(1)} {
		for _, pair := range [][2]float64{{nan, 1}, {1, nan}, {nan, nan}} {
			_, err := AlmostEqual(pair[0], pair[1], tolerance)
			assert.True(t, core.IsInvalidArgumentError(err), "tolerance %v pair %v", tolerance, pair)

			_, err = GreaterOrAlmostEqual(pair[0], pair[1], tolerance)
			assert.True(t, core.IsInvalidArgumentError(err))

			_, err = LessOrAlmostEqual(pair[0], pair[1], tolerance)
			assert.True(t, core.IsInvalidArgumentError(err))
		}
	}
}

func TestAlmostEqual_NegativeTolerance(t *testing.T) {
	for _, tolerance := range []float64{-0.0000001, -math.MaxFloat64, math.Inf(-1), math.NaN()} {
		_, err := AlmostEqual(4.5, -3.2, tolerance)
		assert.True(t, core.IsOutOfRangeError(err), "tolerance %v", tolerance)

		_, err = GreaterOrAlmostEqual(4.5, -3.2, tolerance)
		assert.True(t, core.IsOutOfRangeError(err))

		_, err = LessOrAlmostEqual(4.5, -3.2, tolerance)
		assert.True(t, core.IsOutOfRangeError(err))
	}
}

func TestAlmostEqual_ReflexiveAndSymmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	values := []float64{
		0, math.Copysign(0, -1), 1e-300, -1e-300, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1),
	}
	for i := 0; i < 200; i++ {
		values = append(values, (r.Float64()-0.5)*math.Pow(10, float64(r.IntN(40)-20)))
	}
	tolerances := []float64{0, 1e-12, DefaultTolerance, 1e-3, 0.5, 1, 10}

	for _, tolerance := range tolerances {
		for i, x := range values {
			same, err := AlmostEqual(x, x, tolerance)
			require.NoError(t, err)
			if !same {
				t.Errorf("Expected AlmostEqual(%v, %v, %v) to be reflexive", x, x, tolerance)
			}

			y := values[(i*31+7)%len(values)]
			xy, err := AlmostEqual(x, y, tolerance)
			require.NoError(t, err)
			yx, err := AlmostEqual(y, x, tolerance)
			require.NoError(t, err)
			if xy != yx {
				t.Errorf("Expected AlmostEqual to be symmetric for %v, %v at %v", x, y, tolerance)
			}
		}
	}
}

func TestGreaterOrAlmostEqual(t *testing.T) {
	tests := []struct {
		a, b, tolerance float64
		expected        bool
	}{
		{2, 1, DefaultTolerance, true},
		{-1, -2, 0, true},
		{1, 1 + 1e-10, DefaultTolerance, true},
		{3.2, 3.5, 0.1, true},
		{1, 2, DefaultTolerance, false},
		{3.2, 3.5, 0.02, false},
		{-0.025, 0.025, 0.049999999, false},
	}

	for _, test := range tests {
		got, err := GreaterOrAlmostEqual(test.a, test.b, test.tolerance)
		require.NoError(t, err)
		if got != test.expected {
			t.Errorf("GreaterOrAlmostEqual(%v, %v, %v) = %v, expected %v", test.a, test.b, test.tolerance, got, test.expected)
		}
	}
}

func TestLessOrAlmostEqual(t *testing.T) {
	tests := []struct {
		a, b, tolerance float64
		expected        bool
	}{
		{1, 2, DefaultTolerance, true},
		{-2, -1, 0, true},
		{1 + 1e-10, 1, DefaultTolerance, true},
		{3.5, 3.2, 0.1, true},
		{2, 1, DefaultTolerance, false},
		{3.5, 3.2, 0.02, false},
		{0.025, -0.025, 0.049999999, false},
	}

	for _, test := range tests {
		got, err := LessOrAlmostEqual(test.a, test.b, test.tolerance)
		require.NoError(t, err)
		if got != test.expected {
			t.Errorf("LessOrAlmostEqual(%v, %v, %v) = %v, expected %v", test.a, test.b, test.tolerance, got, test.expected)
		}
	}
}
