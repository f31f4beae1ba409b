package bench

import (
	"context"
	"fmt"

	"github.com/amp-labs/amp-binsort/envutil"
	"github.com/amp-labs/amp-binsort/errors"
)

// Config drives Run.
type Config struct {
	// Sizes are the input lengths to time, in order.
	Sizes []int

	// Seed makes inputs reproducible. Equal seeds give equal inputs.
	Seed uint64

	// MaxValue bounds the random values, which fall in [1, MaxValue].
	MaxValue int

	// Repeat is how many times each sort is timed; the best time is kept.
	Repeat int
}

// DefaultConfig matches the sizes of the classic comparison run.
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{10, 100, 1000, 5000},
		Seed:     1,
		MaxValue: 10000,
		Repeat:   1,
	}
}

// LoadConfig reads BENCH_SIZES, BENCH_SEED, BENCH_MAX_VALUE and BENCH_REPEAT,
// falling back to DefaultConfig for anything unset.
func LoadConfig(ctx context.Context) (Config, error) {
	dflt := DefaultConfig()

	sizes, err := envutil.IntList(ctx, "BENCH_SIZES", envutil.Default(dflt.Sizes)).Value()
	if err != nil {
		return Config{}, err
	}

	seed, err := envutil.Int[int64](ctx, "BENCH_SEED", envutil.Default(int64(dflt.Seed))).Value()
	if err != nil {
		return Config{}, err
	}

	maxValue, err := envutil.Int[int](ctx, "BENCH_MAX_VALUE", envutil.Default(dflt.MaxValue)).Value()
	if err != nil {
		return Config{}, err
	}

	repeat, err := envutil.Int[int](ctx, "BENCH_REPEAT", envutil.Default(dflt.Repeat)).Value()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Sizes:    sizes,
		Seed:     uint64(seed), //nolint:gosec
		MaxValue: maxValue,
		Repeat:   repeat,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations that cannot produce a meaningful run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes given", errors.ErrInvalidConfig)
	}

	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size must be positive, got %d", errors.ErrInvalidConfig, size)
		}
	}

	if c.MaxValue <= 0 {
		return fmt.Errorf("%w: max value must be positive, got %d", errors.ErrInvalidConfig, c.MaxValue)
	}

	if c.Repeat <= 0 {
		return fmt.Errorf("%w: repeat must be positive, got %d", errors.ErrInvalidConfig, c.Repeat)
	}

	return nil
}
