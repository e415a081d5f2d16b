package container

import (
	"github.com/shopspring/decimal"

	"mathkit/adapters/random"
	"mathkit/domain/numeric"
	"mathkit/internal"
	"mathkit/internal/config"
	"mathkit/internal/errors"
	"mathkit/ports"
)

// Container holds the configured library dependencies
type Container struct {
	Config *config.Config

	Logger *internal.Logger
	Random *random.Generator

	Tolerance        float64
	DecimalTolerance decimal.Decimal
}

// New creates a container from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}

	logger := internal.NewLogger(cfg.Log.Level)

	opts := []random.Option{random.WithLogger(logger)}
	if cfg.Random.Seeded {
		opts = append(opts, random.WithSeed(cfg.Random.Seed))
	}

	c := &Container{
		Config:           cfg,
		Logger:           logger,
		Random:           random.NewGenerator(opts...),
		Tolerance:        cfg.Tolerance.Float,
		DecimalTolerance: cfg.Tolerance.Decimal,
	}

	logger.Debug("container initialized: tolerance=%g decimal_tolerance=%s seeded=%t",
		c.Tolerance, c.DecimalTolerance, cfg.Random.Seeded)
	return c, nil
}

// NewFromEnv loads the configuration from the environment and builds a container
func NewFromEnv() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return New(cfg)
}

// RandomSource returns the shared generator as a port
func (c *Container) RandomSource() ports.RandomSource {
	return c.Random
}

// AlmostEqual compares a and b using the configured tolerance
func (c *Container) AlmostEqual(a, b float64) (bool, error) {
	return numeric.AlmostEqual(a, b, c.Tolerance)
}

// AlmostEqualDecimal compares a and b using the configured decimal tolerance
func (c *Container) AlmostEqualDecimal(a, b decimal.Decimal) (bool, error) {
	return numeric.AlmostEqualDecimal(a, b, c.DecimalTolerance)
}
