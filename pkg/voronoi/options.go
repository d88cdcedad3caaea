package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/pkg/errors"
)

// DefaultTolerance - доля большей стороны прямоугольника, в пределах
// которой концы ребер свариваются в одну вершину.
const DefaultTolerance = 1e-9

// Config - параметры FindAll.
type Config struct {
	Tolerance float64
	Logger    *logger.ZapLogger
}

func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultTolerance,
		Logger:    logger.Nop(),
	}
}

func (c Config) validate() error {
	if !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0) {
		return errors.Wrapf(ErrInvalidInput, "tolerance %g", c.Tolerance)
	}
	if c.Logger == nil {
		return errors.Wrap(ErrInvalidInput, "nil logger")
	}
	return nil
}

type Option func(*Config)

// WithTolerance задает относительный допуск сварки вершин.
func WithTolerance(tolerance float64) Option {
	return func(c *Config) {
		c.Tolerance = tolerance
	}
}

func WithLogger(log *logger.ZapLogger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}
