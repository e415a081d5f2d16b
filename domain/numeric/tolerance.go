// Package numeric provides tolerance-based comparisons, summary statistics and
// small integer/decimal helpers in both float64 and fixed-point decimal flavors.
package numeric

import (
	"math"

	"mathkit/domain/core"
)

// DefaultTolerance is the tolerance callers pass when they have no better bound
const DefaultTolerance = 1e-8

// AlmostEqual reports whether a and b are equal within tolerance.
//
// When the larger magnitude of the two operands exceeds tolerance the check is
// relative (|a-b| / max(|a|,|b|) <= tolerance); otherwise it is absolute
// (|a-b| <= tolerance), which keeps values near zero from dividing by ~0.
func AlmostEqual(a, b, tolerance float64) (bool, error) {
	if err := checkOperands(a, b, tolerance); err != nil {
		return false, err
	}
	return almostEqual(a, b, tolerance), nil
}

// GreaterOrAlmostEqual reports whether a > b or a is almost equal to b
func GreaterOrAlmostEqual(a, b, tolerance float64) (bool, error) {
	if err := checkOperands(a, b, tolerance); err != nil {
		return false, err
	}
	return a > b || almostEqual(a, b, tolerance), nil
}

// LessOrAlmostEqual reports whether a < b or a is almost equal to b
func LessOrAlmostEqual(a, b, tolerance float64) (bool, error) {
	if err := checkOperands(a, b, tolerance); err != nil {
		return false, err
	}
	return a < b || almostEqual(a, b, tolerance), nil
}

func checkOperands(a, b, tolerance float64) error {
	if math.IsNaN(a) || math.IsNaN(b) {
		return core.NewInvalidArgumentError("operands", "a or b is NaN")
	}
	// written so that a NaN tolerance also fails
	if !(tolerance >= 0) {
		return core.NewOutOfRangeError("tolerance", tolerance, "must be >= 0")
	}
	return nil
}

func almostEqual(a, b, tolerance float64) bool {
	// equal infinities would otherwise produce Inf-Inf = NaN below
	if a == b {
		return true
	}

	diff := math.Abs(a - b)
	mag := math.Max(math.Abs(a), math.Abs(b))
	if mag > tolerance {
		return diff/mag <= tolerance
	}
	return diff <= tolerance
}
