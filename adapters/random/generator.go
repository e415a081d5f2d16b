package random

import (
	rand "math/rand/v2"
	"sync"
	"time"

	"mathkit/internal"
	"mathkit/ports"
)

var _ ports.RandomSource = (*Generator)(nil)

// Generator hands out independently seeded Local generators drawn from one
// shared seed source. It is safe for concurrent use: the seed source is
// locked for a single draw, and the RandomSource methods run on pooled
// Locals without locking.
type Generator struct {
	mu     sync.Mutex
	seeds  *rand.Rand
	pool   sync.Pool
	logger *internal.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithSeed makes the seed source, and so every Local it seeds, deterministic
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seeds = NewLocal(seed).r
	}
}

// WithLogger sets the logger used to trace seeding
func WithLogger(logger *internal.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a generator seeded from the clock unless WithSeed is given
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.seeds == nil {
		g.seeds = NewLocal(time.Now().UnixNano()).r
	}
	g.pool.New = func() any {
		return g.Local()
	}
	return g
}

// Local returns a new generator seeded from the shared source. The caller
// owns it and may Reseed it without affecting any other Local.
func (g *Generator) Local() *Local {
	g.mu.Lock()
	seed := g.seeds.Int64()
	g.mu.Unlock()

	g.logger.Trace("seeding local generator with %d", seed)
	return NewLocal(seed)
}

func (g *Generator) with(fn func(l *Local)) {
	l := g.pool.Get().(*Local)
	fn(l)
	g.pool.Put(l)
}

func (g *Generator) Next() (n int) {
	g.with(func(l *Local) { n = l.Next() })
	return n
}

func (g *Generator) NextMax(max int) (n int, err error) {
	g.with(func(l *Local) { n, err = l.NextMax(max) })
	return n, err
}

func (g *Generator) NextRange(min, max int) (n int, err error) {
	g.with(func(l *Local) { n, err = l.NextRange(min, max) })
	return n, err
}

func (g *Generator) NextBytes(buf []byte) {
	g.with(func(l *Local) { l.NextBytes(buf) })
}

func (g *Generator) NextFloat64() (f float64) {
	g.with(func(l *Local) { f = l.NextFloat64() })
	return f
}

// Number returns an int between 0 and max inclusive, in either order
func (g *Generator) Number(max int) (n int) {
	g.with(func(l *Local) { n = l.Number(max) })
	return n
}

// NumberBetween returns an int between lo and hi inclusive, in either order.
// An upper bound of math.MaxInt stays exclusive.
func (g *Generator) NumberBetween(lo, hi int) (n int) {
	g.with(func(l *Local) { n = l.NumberBetween(lo, hi) })
	return n
}
