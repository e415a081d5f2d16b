package ports

// RandomSource provides uniformly distributed pseudo-random values
type RandomSource interface {
	// Next returns a non-negative int
	Next() int

	// NextMax returns a non-negative int strictly less than max.
	// max == 0 yields 0; a negative max is an OutOfRange error.
	NextMax(max int) (int, error)

	// NextRange returns an int in [min, max). min == max yields min;
	// min > max is an OutOfRange error.
	NextRange(min, max int) (int, error)

	// NextBytes fills buf with random bytes
	NextBytes(buf []byte)

	// NextFloat64 returns a float64 in [0.0, 1.0)
	NextFloat64() float64
}
