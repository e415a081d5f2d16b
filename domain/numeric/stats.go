package numeric

import (
	"github.com/montanaflynn/stats"

	"mathkit/domain/core"
	apperrors "mathkit/internal/errors"
)

// Variance returns the population variance of values (sum of squared
// deviations divided by n). Fewer than two values is an error.
func Variance(values []float64) (float64, error) {
	if err := checkSpread("values", values); err != nil {
		return 0, err
	}

	variance, err := stats.PopulationVariance(values)
	if err != nil {
		return 0, apperrors.Wrap(err, "population variance failed")
	}
	return variance, nil
}

// StandardDeviation returns the sample standard deviation of values
// (square root of the sum of squared deviations divided by n-1).
// Note the divisor differs from Variance.
func StandardDeviation(values []float64) (float64, error) {
	if err := checkSpread("values", values); err != nil {
		return 0, err
	}

	stdDev, err := stats.StandardDeviationSample(values)
	if err != nil {
		return 0, apperrors.Wrap(err, "sample standard deviation failed")
	}
	return stdDev, nil
}

// Covariance returns the population covariance of two equally long sequences.
// The covariance of two single values is 0.
func Covariance(values1, values2 []float64) (float64, error) {
	if err := checkPair(len(values1), values1 == nil, len(values2), values2 == nil); err != nil {
		return 0, err
	}
	if len(values1) == 1 {
		return 0, nil
	}

	cov, err := stats.CovariancePopulation(values1, values2)
	if err != nil {
		return 0, apperrors.Wrap(err, "population covariance failed")
	}
	return cov, nil
}

func checkSpread[T any](param string, values []T) error {
	if values == nil {
		return core.NewNullArgumentError(param)
	}
	if len(values) < 2 {
		return core.NewInvalidArgumentError(param, "two values are required")
	}
	return nil
}

func checkPair(len1 int, nil1 bool, len2 int, nil2 bool) error {
	if nil1 {
		return core.NewNullArgumentError("values1")
	}
	if nil2 {
		return core.NewNullArgumentError("values2")
	}
	if len1 == 0 {
		return core.NewInvalidArgumentError("values1", "sequence is empty")
	}
	if len2 == 0 {
		return core.NewInvalidArgumentError("values2", "sequence is empty")
	}
	if len1 != len2 {
		return core.NewInvalidArgumentError("values2", "length of sequences is different")
	}
	return nil
}
