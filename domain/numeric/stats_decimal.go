package numeric

import (
	"github.com/shopspring/decimal"
)

// decimalScale is the number of fractional digits kept by decimal divisions
const decimalScale = 28

// VarianceDecimal is Variance over decimals. The computation runs in float64
// and the result is converted back, so precision beyond float64 is lost.
func VarianceDecimal(values []decimal.Decimal) (decimal.Decimal, error) {
	if err := checkSpread("values", values); err != nil {
		return decimal.Zero, err
	}
	variance, err := Variance(toFloat64s(values))
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(variance), nil
}

// StandardDeviationDecimal is StandardDeviation over decimals, computed in float64
func StandardDeviationDecimal(values []decimal.Decimal) (decimal.Decimal, error) {
	if err := checkSpread("values", values); err != nil {
		return decimal.Zero, err
	}
	stdDev, err := StandardDeviation(toFloat64s(values))
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(stdDev), nil
}

// CovarianceDecimal is Covariance computed natively in decimal arithmetic
func CovarianceDecimal(values1, values2 []decimal.Decimal) (decimal.Decimal, error) {
	if err := checkPair(len(values1), values1 == nil, len(values2), values2 == nil); err != nil {
		return decimal.Zero, err
	}
	if len(values1) == 1 {
		return decimal.Zero, nil
	}

	n := decimal.NewFromInt(int64(len(values1)))
	avg1 := decimal.Sum(values1[0], values1[1:]...).DivRound(n, decimalScale)
	avg2 := decimal.Sum(values2[0], values2[1:]...).DivRound(n, decimalScale)

	cov := decimal.Zero
	for i := range values1 {
		cov = cov.Add(values1[i].Sub(avg1).Mul(values2[i].Sub(avg2)))
	}
	return cov.DivRound(n, decimalScale), nil
}

func toFloat64s(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}
