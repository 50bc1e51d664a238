package selector

import (
	"cmp"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"go.ntppool.org/stratify/pool"
)

// sumTolerance is how far the fractions of a Distribution may drift from
// 1.0 due to floating point summation.
const sumTolerance = 1e-9

// Distribution maps each category to the fraction of the final selection
// it should make up. Fractions must be in (0, 1] and sum to 1.0.
type Distribution[K cmp.Ordered] map[K]float64

// Categories returns the distribution's categories in ascending order.
func (d Distribution[K]) Categories() []K {
	return slices.Sorted(maps.Keys(d))
}

func (d Distribution[K]) validate() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidDistribution)
	}

	var sum float64
	for _, cat := range d.Categories() {
		f := d[cat]
		if math.IsNaN(f) || f <= 0 || f > 1 {
			return fmt.Errorf("%w: category %v has fraction %v, must be in (0, 1]",
				ErrInvalidDistribution, cat, f)
		}
		sum += f
	}

	if math.Abs(sum-1) > sumTolerance {
		return fmt.Errorf("%w: fractions sum to %v, must sum to 1.0", ErrInvalidDistribution, sum)
	}

	return nil
}

// config collects the construction options
type config struct {
	count    int
	hasCount bool
	log      *slog.Logger
	metrics  *Metrics
	rand     pool.Rand
}

// Option configures a Selector.
type Option func(*config)

// WithCount sets the exact number of elements Select must return. A
// negative count makes New fail with ErrInvalidDistribution.
func WithCount(n int) Option {
	return func(c *config) {
		c.count = n
		c.hasCount = true
	}
}

// WithLogger sets the logger used for debug output about quotas and
// trimming. By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMetrics enables prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithRand sets the random source used by random mode selection.
func WithRand(r pool.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

// selectionMode controls how quotas are taken from each pool
type selectionMode uint8

const (
	modePrefix selectionMode = iota // first elements in insertion order
	modeRandom                      // uniform random without replacement
)

func (m selectionMode) String() string {
	switch m {
	case modeRandom:
		return "random"
	default:
		return "prefix"
	}
}

type selectConfig struct {
	mode selectionMode
}

// SelectOption configures a single Select call.
type SelectOption func(*selectConfig)

// Randomly makes Select sample each category uniformly at random instead
// of taking elements in insertion order.
func Randomly() SelectOption {
	return func(c *selectConfig) {
		c.mode = modeRandom
	}
}

// need is a category with its need multiplier
type need[K cmp.Ordered] struct {
	category   K
	multiplier float64
}
