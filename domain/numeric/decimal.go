package numeric

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"mathkit/domain/core"
)

// Bounds of the 96-bit fixed-point decimal range the decimal helpers accept
var (
	DecimalMaxValue = decimal.RequireFromString("79228162514264337593543950335")
	DecimalMinValue = DecimalMaxValue.Neg()
)

var (
	minInt32Decimal = decimal.NewFromInt(math.MinInt32)
	maxInt32Decimal = decimal.NewFromInt(math.MaxInt32)
)

// MidpointRounding selects how a value exactly halfway between two
// candidates is rounded
type MidpointRounding int

const (
	// ToEven rounds midpoints to the nearest even digit (banker's rounding)
	ToEven MidpointRounding = iota
	// AwayFromZero rounds midpoints to the candidate farther from zero
	AwayFromZero
)

func (m MidpointRounding) String() string {
	switch m {
	case ToEven:
		return "ToEven"
	case AwayFromZero:
		return "AwayFromZero"
	}
	return "MidpointRounding(" + strconv.Itoa(int(m)) + ")"
}

// TruncateDecimal discards the fractional part of v
func TruncateDecimal(v decimal.Decimal) (int32, error) {
	if v.GreaterThan(maxInt32Decimal) || v.LessThan(minInt32Decimal) {
		return 0, core.NewOverflowError("decimal value overflows the bounds of an int32")
	}
	return int32(v.Truncate(0).IntPart()), nil
}

// TruncateSignificantDigits keeps digits fractional digits of v and drops the
// rest without rounding
func TruncateSignificantDigits(v decimal.Decimal, digits int) (decimal.Decimal, error) {
	if digits < 0 {
		return decimal.Zero, core.NewOutOfRangeError("digits", digits, "must be >= 0")
	}
	if digits > decimalScale || v.Abs().Shift(int32(digits)).GreaterThan(DecimalMaxValue) {
		return decimal.Zero, core.NewOverflowError("scaled value overflows the decimal range")
	}
	return v.Truncate(int32(digits)), nil
}

// RoundDecimal rounds v to digits fractional digits using mode for midpoints
func RoundDecimal(v decimal.Decimal, digits int32, mode MidpointRounding) (decimal.Decimal, error) {
	if digits < 0 || digits > decimalScale {
		return decimal.Zero, core.NewOutOfRangeError("digits", digits, "must be between 0 and 28")
	}
	switch mode {
	case ToEven:
		return v.RoundBank(digits), nil
	case AwayFromZero:
		return v.Round(digits), nil
	}
	return decimal.Zero, core.NewInvalidArgumentError("mode", "unknown midpoint rounding "+mode.String())
}

// RoundNullDecimal is RoundDecimal for optional values; an invalid (null)
// value is returned unchanged
func RoundNullDecimal(v decimal.NullDecimal, digits int32, mode MidpointRounding) (decimal.NullDecimal, error) {
	if !v.Valid {
		return v, nil
	}
	rounded, err := RoundDecimal(v.Decimal, digits, mode)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: rounded, Valid: true}, nil
}
