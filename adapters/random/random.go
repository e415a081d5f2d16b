// Package random provides concurrency-safe pseudo-random numbers.
//
// A Generator owns the seed source and is shared between goroutines. Code
// that needs a reproducible stream takes a Local from it (or builds one with
// NewLocal) and reseeds that Local; other goroutines are unaffected.
// The package-level functions draw from a process-wide default Generator.
package random

var defaultGenerator = NewGenerator()

// Default returns the process-wide generator
func Default() *Generator {
	return defaultGenerator
}

// Next returns a non-negative int
func Next() int {
	return defaultGenerator.Next()
}

// NextMax returns a non-negative int less than max
func NextMax(max int) (int, error) {
	return defaultGenerator.NextMax(max)
}

// NextRange returns an int in [min, max)
func NextRange(min, max int) (int, error) {
	return defaultGenerator.NextRange(min, max)
}

// NextBytes fills buf with random bytes
func NextBytes(buf []byte) {
	defaultGenerator.NextBytes(buf)
}

// NextFloat64 returns a float64 in [0.0, 1.0)
func NextFloat64() float64 {
	return defaultGenerator.NextFloat64()
}

// Number returns an int between 0 and max inclusive
func Number(max int) int {
	return defaultGenerator.Number(max)
}

// NumberBetween returns an int between lo and hi inclusive
func NumberBetween(lo, hi int) int {
	return defaultGenerator.NumberBetween(lo, hi)
}
