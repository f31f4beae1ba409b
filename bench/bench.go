// Package bench measures binsort against the standard library sort and checks
// its correctness properties on randomized inputs.
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/amp-labs/amp-binsort/binsort"
	"github.com/amp-labs/amp-binsort/errors"
	"github.com/amp-labs/amp-binsort/hashing"
	"github.com/amp-labs/amp-binsort/logger"
	"github.com/amp-labs/amp-binsort/telemetry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Result is the measurement for one input size.
type Result struct {
	Size        int
	Binsort     time.Duration
	Reference   time.Duration
	Ratio       float64
	Fingerprint uint64
}

// Report is the outcome of a Run.
type Report struct {
	RunID   uuid.UUID
	Seed    uint64
	Results []Result
}

type options struct {
	registerer prometheus.Registerer
	tracer     trace.Tracer
	clock      func() time.Time
}

// Option customizes Run.
type Option func(*options)

// WithRegisterer records metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithTracerProvider creates spans from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracer = tp.Tracer("github.com/amp-labs/amp-binsort/bench")
	}
}

func withClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Run times binsort.Sort and slices.Sort on identical random inputs for every
// configured size. The two outputs must agree, otherwise errors.ErrMismatch is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{
		tracer: telemetry.Tracer(),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.registerer == nil {
		o.registerer = prometheus.NewRegistry()
	}

	m := newMetrics(o.registerer)
	report := &Report{
		RunID: uuid.New(),
		Seed:  cfg.Seed,
	}

	ctx = logger.WithSubsystem(ctx, "bench")
	ctx = logger.With(ctx, "run_id", report.RunID.String())
	log := logger.Get(ctx)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)) //nolint:gosec

	for _, size := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := measure(ctx, o, rng, size, cfg)
		if err != nil {
			return report, err
		}

		m.duration.WithLabelValues(algorithmBinsort).Observe(res.Binsort.Seconds())
		m.duration.WithLabelValues(algorithmReference).Observe(res.Reference.Seconds())
		m.runs.Inc()

		log.Debug("measured size",
			"size", res.Size,
			"binsort", res.Binsort,
			"reference", res.Reference,
			"ratio", res.Ratio)

		report.Results = append(report.Results, res)
	}

	return report, nil
}

func measure(ctx context.Context, o *options, rng *rand.Rand, size int, cfg Config) (Result, error) {
	_, span := o.tracer.Start(ctx, "bench.size", trace.WithAttributes(attribute.Int("size", size)))
	defer span.End()

	input := randomInts(rng, size, cfg.MaxValue)
	res := Result{
		Size:        size,
		Fingerprint: hashing.Fingerprint(input, hashing.Int),
	}

	var (
		ours   []int
		theirs []int
	)

	for range cfg.Repeat {
		ours = slices.Clone(input)
		elapsed := timed(o.clock, func() { binsort.Sort(ours) })

		if res.Binsort == 0 || elapsed < res.Binsort {
			res.Binsort = elapsed
		}

		theirs = slices.Clone(input)
		elapsed = timed(o.clock, func() { slices.Sort(theirs) })

		if res.Reference == 0 || elapsed < res.Reference {
			res.Reference = elapsed
		}
	}

	if !slices.Equal(ours, theirs) {
		err := fmt.Errorf("%w: size %d, input fingerprint %016x", errors.ErrMismatch, size, res.Fingerprint)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return res, err
	}

	res.Ratio = ratio(res.Binsort, res.Reference)

	span.SetAttributes(
		attribute.Int64("binsort_ns", res.Binsort.Nanoseconds()),
		attribute.Int64("reference_ns", res.Reference.Nanoseconds()),
		attribute.Float64("ratio", res.Ratio),
		attribute.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)),
	)

	return res, nil
}

func timed(clock func() time.Time, f func()) time.Duration {
	start := clock()
	f()

	return clock().Sub(start)
}

// ratio is binsort time over reference time. A zero reference (timer
// resolution on tiny inputs) is treated as one nanosecond.
func ratio(ours, theirs time.Duration) float64 {
	if theirs <= 0 {
		theirs = time.Nanosecond
	}

	return float64(ours) / float64(theirs)
}

func randomInts(rng *rand.Rand, n, maxValue int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(maxValue) + 1
	}

	return out
}
