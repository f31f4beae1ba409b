package bench

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-binsort/binsort"
	"github.com/amp-labs/amp-binsort/errors"
	"github.com/amp-labs/amp-binsort/hashing"
	"github.com/amp-labs/amp-binsort/logger"
	"go.uber.org/atomic"
)

const (
	defaultTrials = 200
	defaultMaxLen = 64

	// Small key range, so most inputs contain runs of equal keys.
	defaultKeyRange = 8
)

// VerifyConfig drives Verify. Zero fields take their defaults.
type VerifyConfig struct {
	Trials   int
	MaxLen   int
	KeyRange int
	Workers  int
	Seed     uint64
}

// DefaultVerifyConfig holds the values zero fields of a VerifyConfig fall back
// to. Workers is left zero, meaning GOMAXPROCS.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Trials:   defaultTrials,
		MaxLen:   defaultMaxLen,
		KeyRange: defaultKeyRange,
	}
}

func (c VerifyConfig) withDefaults() VerifyConfig {
	if c.Trials == 0 {
		c.Trials = defaultTrials
	}

	if c.MaxLen == 0 {
		c.MaxLen = defaultMaxLen
	}

	if c.KeyRange == 0 {
		c.KeyRange = defaultKeyRange
	}

	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	return c
}

func (c VerifyConfig) validate() error {
	switch {
	case c.Trials < 0:
		return fmt.Errorf("%w: trials must not be negative, got %d", errors.ErrInvalidConfig, c.Trials)
	case c.MaxLen < 0:
		return fmt.Errorf("%w: max length must not be negative, got %d", errors.ErrInvalidConfig, c.MaxLen)
	case c.KeyRange < 0:
		return fmt.Errorf("%w: key range must not be negative, got %d", errors.ErrInvalidConfig, c.KeyRange)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", errors.ErrInvalidConfig, c.Workers)
	}

	return nil
}

// VerifyReport counts the trials Verify ran.
type VerifyReport struct {
	Trials int
	Passed int64
	Failed int64
}

// tagged is a key plus its position in the unsorted input, so that stability
// can be checked after sorting by key alone.
type tagged struct {
	key int
	tag int
}

func byKey(a, b tagged) bool {
	return a.key < b.key
}

// Verify sorts Trials random inputs on a worker pool and checks each output is
// ordered, a permutation of its input, stable, and identical to a stable
// reference sort. All failures are joined into the returned error.
func Verify(ctx context.Context, cfg VerifyConfig) (*VerifyReport, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg = cfg.withDefaults()
	ctx = logger.WithSubsystem(ctx, "verify")

	var (
		passed = atomic.NewInt64(0)
		failed = atomic.NewInt64(0)
		mut    sync.Mutex
		errs   errors.Collection
	)

	pool := pond.NewPool(cfg.Workers)

	for trial := range cfg.Trials {
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}

			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(trial))) //nolint:gosec

			if err := runTrial(rng, cfg); err != nil {
				failed.Inc()

				mut.Lock()
				errs.Add(fmt.Errorf("trial %d: %w", trial, err))
				mut.Unlock()

				return
			}

			passed.Inc()
		})
	}

	pool.StopAndWait()

	report := &VerifyReport{
		Trials: cfg.Trials,
		Passed: passed.Load(),
		Failed: failed.Load(),
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	logger.Get(ctx).Info("verification finished",
		"trials", report.Trials,
		"passed", report.Passed,
		"failed", report.Failed)

	return report, errs.GetError()
}

func runTrial(rng *rand.Rand, cfg VerifyConfig) error {
	n := rng.IntN(cfg.MaxLen + 1)

	input := make([]tagged, n)
	for i := range input {
		input[i] = tagged{key: rng.IntN(cfg.KeyRange), tag: i}
	}

	return checkSort(input, func(s []tagged) { binsort.SortFunc(s, byKey) })
}

// checkSort runs sortFn on a copy of input and reports the first property the
// output violates.
func checkSort(input []tagged, sortFn func([]tagged)) error {
	got := slices.Clone(input)
	sortFn(got)

	if !binsort.IsSorted(got, byKey) {
		return fmt.Errorf("%w: %v", errors.ErrNotSorted, keys(got))
	}

	if hashing.MultisetDigest(got, encodeTagged) != hashing.MultisetDigest(input, encodeTagged) {
		return fmt.Errorf("%w: input %v, output %v", errors.ErrNotPermutation, keys(input), keys(got))
	}

	for i := 1; i < len(got); i++ {
		if got[i-1].key == got[i].key && got[i-1].tag > got[i].tag {
			return fmt.Errorf("%w: key %d, tags %d before %d",
				errors.ErrNotStable, got[i].key, got[i-1].tag, got[i].tag)
		}
	}

	want := slices.Clone(input)
	slices.SortStableFunc(want, func(a, b tagged) int { return cmp.Compare(a.key, b.key) })

	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: got %v, want %v", errors.ErrMismatch, got, want)
	}

	return nil
}

func encodeTagged(buf []byte, v tagged) []byte {
	return hashing.Int(hashing.Int(buf, v.key), v.tag)
}

func keys(s []tagged) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = v.key
	}

	return out
}
