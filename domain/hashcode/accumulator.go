// Package hashcode builds structural hash codes by folding the hashes of
// individual values into an immutable accumulator:
//
//	h := hashcode.Initialize().Fold(p.Name).Fold(p.Age)
//	h = hashcode.FoldSlice(h, p.Tags)
//	return h.Value()
//
// The same values folded in the same order always produce the same value;
// folding nil contributes 0 and is distinguishable from folding nothing.
package hashcode

import (
	"cmp"
	"slices"
	"strconv"
)

const (
	multiplier  int32 = 37
	initializer int32 = 17
)

// Accumulator is an immutable running hash code
type Accumulator struct {
	value int32
}

// Initialize returns an accumulator holding the fixed initial value
func Initialize() Accumulator {
	return Accumulator{value: initializer}
}

// InitializeWith returns an accumulator continuing from seed, typically the
// hash code of an embedded or base value
func InitializeWith(seed int32) Accumulator {
	return Accumulator{value: seed}
}

// Value returns the accumulated hash code
func (a Accumulator) Value() int32 {
	return a.value
}

// Equal reports whether both accumulators hold the same value
func (a Accumulator) Equal(other Accumulator) bool {
	return a.value == other.value
}

func (a Accumulator) String() string {
	return strconv.FormatInt(int64(a.value), 10)
}

// Fold returns a new accumulator with the hash of v folded in.
// Arithmetic wraps around on overflow.
func (a Accumulator) Fold(v any) Accumulator {
	return a.fold(Of(v))
}

func (a Accumulator) fold(h int32) Accumulator {
	return Accumulator{value: a.value*multiplier + h}
}

// FoldSlice folds every element of values in order. A nil slice is folded
// as a single nil value; an empty slice leaves the accumulator unchanged.
func FoldSlice[T any](a Accumulator, values []T) Accumulator {
	if values == nil {
		return a.Fold(nil)
	}
	for _, v := range values {
		a = a.Fold(v)
	}
	return a
}

// FoldMap folds m independent of its iteration order: keys are sorted, folded
// as a sequence, then the values are folded as a sequence in key order.
// A nil map is folded as a single nil value.
func FoldMap[K cmp.Ordered, V any](a Accumulator, m map[K]V) Accumulator {
	return FoldMapFunc(a, m, cmp.Compare[K])
}

// FoldMapFunc is FoldMap with keys ordered by compare
func FoldMapFunc[K comparable, V any](a Accumulator, m map[K]V, compare func(x, y K) int) Accumulator {
	if m == nil {
		return a.Fold(nil)
	}

	keys := sortedKeys(m, compare)
	a = FoldSlice(a, keys)

	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return FoldSlice(a, values)
}

// FoldMapOfSlices is FoldMap for maps whose values are sequences: each value
// is folded element by element, so maps whose value sequences are element-wise
// equal hash identically regardless of how the sequences were built.
func FoldMapOfSlices[K cmp.Ordered, V any](a Accumulator, m map[K][]V) Accumulator {
	return FoldMapOfSlicesFunc(a, m, cmp.Compare[K])
}

// FoldMapOfSlicesFunc is FoldMapOfSlices with keys ordered by compare
func FoldMapOfSlicesFunc[K comparable, V any](a Accumulator, m map[K][]V, compare func(x, y K) int) Accumulator {
	if m == nil {
		return a.Fold(nil)
	}

	keys := sortedKeys(m, compare)
	a = FoldSlice(a, keys)
	for _, k := range keys {
		a = FoldSlice(a, m[k])
	}
	return a
}

func sortedKeys[K comparable, V any](m map[K]V, compare func(x, y K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortStableFunc(keys, compare)
	return keys
}
