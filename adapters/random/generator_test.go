package random

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"mathkit/domain/core"
	"mathkit/internal"
)

func TestGenerator_WithSeedIsDeterministic(t *testing.T) {
	g1 := NewGenerator(WithSeed(42))
	g2 := NewGenerator(WithSeed(42))

	for i := 0; i < 3; i++ {
		assert.Equal(t, draw(g1.Local(), 20), draw(g2.Local(), 20), "local %d", i)
	}
}

func TestGenerator_LocalsAreIndependentlySeeded(t *testing.T) {
	g := NewGenerator(WithSeed(1))
	a, b := g.Local(), g.Local()

	assert.NotEqual(t, a.Seed(), b.Seed())
	assert.NotEqual(t, draw(a, 10), draw(b, 10))
}

func TestGenerator_ReseedOnlyAffectsOwner(t *testing.T) {
	g := NewGenerator(WithSeed(7))
	mine, other := g.Local(), g.Local()

	reference := NewLocal(other.Seed())

	mine.Reseed(123)
	first := draw(mine, 50)
	mine.Reseed(123)
	assert.Equal(t, first, draw(mine, 50))

	assert.Equal(t, draw(reference, 50), draw(other, 50))
}

func TestGenerator_Bounds(t *testing.T) {
	g := NewGenerator(WithSeed(11))

	for i := 0; i < 500; i++ {
		assert.GreaterOrEqual(t, g.Next(), 0)

		n, err := g.NextMax(5)
		require.NoError(t, err)
		assert.True(t, n >= 0 && n < 5)

		r, err := g.NextRange(10, 20)
		require.NoError(t, err)
		assert.True(t, r >= 10 && r < 20)

		f := g.NextFloat64()
		assert.True(t, f >= 0 && f < 1)

		m := g.Number(3)
		assert.True(t, m >= 0 && m <= 3)

		b := g.NumberBetween(-1, -4)
		assert.True(t, b >= -4 && b <= -1)
	}

	_, err := g.NextMax(-1)
	assert.True(t, core.IsOutOfRangeError(err))

	_, err = g.NextRange(1, 0)
	assert.True(t, core.IsOutOfRangeError(err))

	buf := make([]byte, 32)
	g.NextBytes(buf)
	assert.NotEqual(t, make([]byte, 32), buf)
}

func TestGenerator_Concurrent(t *testing.T) {
	g := NewGenerator()

	var eg errgroup.Group
	for w := 0; w < 16; w++ {
		eg.Go(func() error {
			own := g.Local()
			own.Reseed(int64(w))
			for i := 0; i < 1000; i++ {
				if _, err := g.NextMax(100); err != nil {
					return err
				}
				if _, err := g.NextRange(-100, 100); err != nil {
					return err
				}
				g.NextBytes(make([]byte, 4))
				_ = g.NextFloat64()
				_ = own.Next()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestGenerator_ConcurrentLocalsAreReproducible(t *testing.T) {
	g := NewGenerator()
	results := make([][]int, 8)

	var eg errgroup.Group
	for w := range results {
		eg.Go(func() error {
			l := g.Local()
			l.Reseed(int64(w % 2))
			results[w] = draw(l, 100)
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	for w := range results {
		assert.Equal(t, results[w%2], results[w], "worker %d", w)
	}
	assert.NotEqual(t, results[0], results[1])
}

func TestGenerator_TracesSeeding(t *testing.T) {
	var buf bytes.Buffer
	logger := internal.NewLoggerTo(internal.LogLevelTrace, log.New(&buf, "", 0))

	g := NewGenerator(WithSeed(3), WithLogger(logger))
	_ = g.Local()

	assert.Contains(t, buf.String(), "[TRACE] seeding local generator")
}

func TestDefaultGenerator(t *testing.T) {
	assert.NotNil(t, Default())
	assert.GreaterOrEqual(t, Next(), 0)

	n, err := NextMax(3)
	require.NoError(t, err)
	assert.Less(t, n, 3)

	r, err := NextRange(-2, 2)
	require.NoError(t, err)
	assert.True(t, r >= -2 && r < 2)

	_, err = NextRange(3, 2)
	assert.True(t, core.IsOutOfRangeError(err))

	f := NextFloat64()
	assert.True(t, f >= 0 && f < 1)

	buf := make([]byte, 16)
	NextBytes(buf)
	assert.NotEqual(t, make([]byte, 16), buf)

	assert.Equal(t, 6, NumberBetween(6, 6))
	assert.Equal(t, 0, Number(0))
}
