package hashcode

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Hasher is implemented by types that provide their own structural hash code,
// usually built with an Accumulator
type Hasher interface {
	HashCode() int32
}

// Of returns the hash contribution of a single value. nil (including typed nil
// pointers, maps, slices, channels, funcs and interfaces) hashes to 0.
// The result is stable across processes.
func Of(v any) int32 {
	switch x := v.(type) {
	case nil:
		return 0
	case Hasher:
		if isNil(v) {
			return 0
		}
		return x.HashCode()
	case Accumulator:
		return x.value
	case bool:
		if x {
			return 1
		}
		return 0
	case int8:
		return int32(x)
	case int16:
		return int32(x)
	case int32:
		return x
	case int:
		return fold64(uint64(x))
	case int64:
		return fold64(uint64(x))
	case uint8:
		return int32(x)
	case uint16:
		return int32(x)
	case uint32:
		return int32(x)
	case uint:
		return fold64(uint64(x))
	case uint64:
		return fold64(x)
	case uintptr:
		return fold64(uint64(x))
	case float32:
		if x == 0 {
			return 0
		}
		return int32(math.Float32bits(x))
	case float64:
		if x == 0 {
			return 0
		}
		return fold64(math.Float64bits(x))
	case string:
		return fold64(xxhash.Sum64String(x))
	case []byte:
		if x == nil {
			return 0
		}
		return fold64(xxhash.Sum64(x))
	case uuid.UUID:
		return fold64(xxhash.Sum64(x[:]))
	case decimal.Decimal:
		// String drops trailing zeros, so 1.0 and 1.00 agree
		return fold64(xxhash.Sum64String(x.String()))
	}

	if isNil(v) {
		return 0
	}
	return fold64(xxhash.Sum64String(fmt.Sprintf("%#v", v)))
}

// fold64 folds a 64-bit value into 32 bits by xor-ing its halves
func fold64(x uint64) int32 {
	return int32(uint32(x) ^ uint32(x>>32))
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
