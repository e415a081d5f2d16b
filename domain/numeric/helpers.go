package numeric

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat/combin"

	"mathkit/domain/core"
)

// Factors returns the positive divisors of n in ascending order
func Factors(n int) ([]int, error) {
	if n <= 0 {
		return nil, core.NewOutOfRangeError("n", n, "must be > 0")
	}

	var small, large []int
	for i := 1; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small, nil
}

// TruthTable returns all 2^inputs combinations of inputs booleans.
// With bigEndian the first column is the most significant bit, so rows read
// FF, FT, TF, TT for two inputs; otherwise the first column is the least
// significant bit (FF, TF, FT, TT). Zero inputs yield an empty table.
func TruthTable(inputs int, bigEndian bool) ([][]bool, error) {
	if inputs < 0 {
		return nil, core.NewOutOfRangeError("inputs", inputs, "must be >= 0")
	}
	if inputs >= strconv.IntSize-1 {
		return nil, core.NewOverflowError("truth table row count overflows int")
	}
	if inputs == 0 {
		return [][]bool{}, nil
	}

	lens := make([]int, inputs)
	for i := range lens {
		lens[i] = 2
	}

	rows := combin.Cartesian(lens)
	table := make([][]bool, len(rows))
	for r, row := range rows {
		bits := make([]bool, inputs)
		for c, v := range row {
			if bigEndian {
				bits[c] = v == 1
			} else {
				bits[inputs-1-c] = v == 1
			}
		}
		table[r] = bits
	}
	return table, nil
}

// Truncate discards the fractional part of v
func Truncate(v float64) (int32, error) {
	if math.IsNaN(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return 0, core.NewOverflowError("float64 value overflows the bounds of an int32")
	}
	return int32(math.Trunc(v)), nil
}

// IsEven reports whether v is divisible by two
func IsEven[T constraints.Integer](v T) bool {
	return v%2 == 0
}

// IsOdd reports whether v is not divisible by two
func IsOdd[T constraints.Integer](v T) bool {
	return v%2 != 0
}
