// Package testkit provides deterministic fixtures and reference computations
// shared by the package tests.
package testkit

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSample returns n deterministic draws from N(mean, stddev^2).
// Draws are produced by inverse transform sampling so that the sequence only
// depends on seed.
func NormalSample(n int, mean, stddev float64, seed uint64) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: stddev}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]float64, n)
	for i := range out {
		u := r.Float64()
		for u == 0 {
			u = r.Float64()
		}
		out[i] = dist.Quantile(u)
	}
	return out
}

// UniformInts returns n deterministic integers in [lo, hi)
func UniformInts(n, lo, hi int, seed uint64) []int {
	r := rand.New(rand.NewPCG(seed, ^seed))
	out := make([]int, n)
	for i := range out {
		out[i] = lo + r.IntN(hi-lo)
	}
	return out
}

// Decimals converts float64 literals into decimals
func Decimals(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// ReferencePopulationVariance computes the population variance with gonum
func ReferencePopulationVariance(x []float64) float64 {
	_, variance := stat.PopMeanVariance(x, nil)
	return variance
}

// ReferenceSampleStdDev computes the sample standard deviation with gonum
func ReferenceSampleStdDev(x []float64) float64 {
	return stat.StdDev(x, nil)
}

// ReferencePopulationCovariance computes the population covariance with gonum.
// gonum returns the unbiased estimate, which is rescaled by (n-1)/n.
func ReferencePopulationCovariance(x, y []float64) float64 {
	n := float64(len(x))
	return stat.Covariance(x, y, nil) * (n - 1) / n
}
