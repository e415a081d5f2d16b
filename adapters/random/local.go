package random

import (
	"encoding/binary"
	"math"
	rand "math/rand/v2"

	"mathkit/domain/core"
	"mathkit/ports"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

var _ ports.RandomSource = (*Local)(nil)

// Local is a seeded generator owned by a single goroutine.
// It is not safe for concurrent use; share a Generator instead.
type Local struct {
	seed int64
	pcg  *rand.PCG
	r    *rand.Rand
}

// NewLocal returns a generator whose sequence is fully determined by seed
func NewLocal(seed int64) *Local {
	pcg := rand.NewPCG(0, 0)
	l := &Local{pcg: pcg, r: rand.New(pcg)}
	l.Reseed(seed)
	return l
}

// Reseed restarts the generator from seed. Two reseeds with the same seed
// produce identical subsequent sequences.
func (l *Local) Reseed(seed int64) {
	u := uint64(seed)
	l.seed = seed
	l.pcg.Seed(mix(u), mix(u+goldenRatio64))
}

// Seed returns the seed of the last Reseed
func (l *Local) Seed() int64 {
	return l.seed
}

func (l *Local) Next() int {
	return l.r.IntN(math.MaxInt)
}

func (l *Local) NextMax(max int) (int, error) {
	if max < 0 {
		return 0, core.NewOutOfRangeError("max", max, "must be non-negative")
	}
	if max == 0 {
		return 0, nil
	}
	return l.r.IntN(max), nil
}

func (l *Local) NextRange(min, max int) (int, error) {
	if min > max {
		return 0, core.NewOutOfRangeError("min", min, "must not exceed max")
	}
	if min == max {
		return min, nil
	}
	// the span may exceed MaxInt, so draw it unsigned
	span := uint64(max) - uint64(min)
	return min + int(l.r.Uint64N(span)), nil
}

func (l *Local) NextBytes(buf []byte) {
	var chunk [8]byte
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, l.r.Uint64())
		buf = buf[8:]
	}
	if len(buf) > 0 {
		binary.LittleEndian.PutUint64(chunk[:], l.r.Uint64())
		copy(buf, chunk[:])
	}
}

func (l *Local) NextFloat64() float64 {
	return l.r.Float64()
}

// Number returns an int between 0 and max inclusive, in either order
func (l *Local) Number(max int) int {
	return l.NumberBetween(0, max)
}

// NumberBetween returns an int between lo and hi inclusive, in either order.
// An upper bound of math.MaxInt stays exclusive.
func (l *Local) NumberBetween(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	n, _ := l.NextRange(lo, inclusive(hi))
	return n
}

func inclusive(max int) int {
	if max == math.MaxInt {
		return max
	}
	return max + 1
}

// mix is the splitmix64 finalizer, spreading nearby seeds across the PCG state
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
