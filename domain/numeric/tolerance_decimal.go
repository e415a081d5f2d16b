package numeric

import (
	"github.com/shopspring/decimal"

	"mathkit/domain/core"
)

// DefaultDecimalTolerance is the decimal counterpart of DefaultTolerance (1e-8)
var DefaultDecimalTolerance = decimal.New(1, -8)

// AlmostEqualDecimal is AlmostEqual for fixed-point decimals.
// The relative branch compares |a-b| against tolerance*max(|a|,|b|), which is
// exact in decimal arithmetic.
func AlmostEqualDecimal(a, b, tolerance decimal.Decimal) (bool, error) {
	if err := checkDecimalTolerance(tolerance); err != nil {
		return false, err
	}
	return almostEqualDecimal(a, b, tolerance), nil
}

// GreaterOrAlmostEqualDecimal reports whether a > b or a is almost equal to b
func GreaterOrAlmostEqualDecimal(a, b, tolerance decimal.Decimal) (bool, error) {
	if err := checkDecimalTolerance(tolerance); err != nil {
		return false, err
	}
	return a.GreaterThan(b) || almostEqualDecimal(a, b, tolerance), nil
}

// LessOrAlmostEqualDecimal reports whether a < b or a is almost equal to b
func LessOrAlmostEqualDecimal(a, b, tolerance decimal.Decimal) (bool, error) {
	if err := checkDecimalTolerance(tolerance); err != nil {
		return false, err
	}
	return a.LessThan(b) || almostEqualDecimal(a, b, tolerance), nil
}

func checkDecimalTolerance(tolerance decimal.Decimal) error {
	if tolerance.IsNegative() {
		return core.NewOutOfRangeError("tolerance", tolerance, "must be >= 0")
	}
	return nil
}

func almostEqualDecimal(a, b, tolerance decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	mag := decimal.Max(a.Abs(), b.Abs())
	if mag.GreaterThan(tolerance) {
		return diff.LessThanOrEqual(tolerance.Mul(mag))
	}
	return diff.LessThanOrEqual(tolerance)
}
