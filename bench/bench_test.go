package bench

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amp-labs/amp-binsort/logger"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// steppingClock advances by the given steps in turn, one step per call.
func steppingClock(steps ...time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	call := 0

	return func() time.Time {
		now = now.Add(steps[call%len(steps)])
		call++

		return now
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithLogger(t.Context(), slogt.New(t))
}

func TestRun(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reg := prometheus.NewRegistry()

	cfg := Config{Sizes: []int{10, 100, 1000}, Seed: 7, MaxValue: 10000, Repeat: 2}

	report, err := Run(testContext(t), cfg,
		WithRegisterer(reg),
		WithTracerProvider(tp),
		withClock(steppingClock(0, 3*time.Millisecond, 0, time.Millisecond)))
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID.String())
	assert.Equal(t, uint64(7), report.Seed)
	require.Len(t, report.Results, 3)

	for i, res := range report.Results {
		assert.Equal(t, cfg.Sizes[i], res.Size)
		assert.Equal(t, 3*time.Millisecond, res.Binsort)
		assert.Equal(t, time.Millisecond, res.Reference)
		assert.InDelta(t, 3.0, res.Ratio, 1e-9)
		assert.NotZero(t, res.Fingerprint)
	}

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)

	for i, span := range spans {
		assert.Equal(t, "bench.size", span.Name)

		attrs := map[attribute.Key]attribute.Value{}
		for _, kv := range span.Attributes {
			attrs[kv.Key] = kv.Value
		}

		assert.Equal(t, int64(cfg.Sizes[i]), attrs["size"].AsInt64())
		assert.Equal(t, int64(3*time.Millisecond), attrs["binsort_ns"].AsInt64())
		assert.InDelta(t, 3.0, attrs["ratio"].AsFloat64(), 1e-9)
		assert.Len(t, attrs["fingerprint"].AsString(), 16)
	}

	expected := `
# HELP binsort_bench_runs_total The total number of benchmark sizes measured
# TYPE binsort_bench_runs_total counter
binsort_bench_runs_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "binsort_bench_runs_total"))

	count, err := testutil.GatherAndCount(reg, "binsort_bench_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRun_SameSeedSameInputs(t *testing.T) {
	t.Parallel()

	cfg := Config{Sizes: []int{50, 500}, Seed: 3, MaxValue: 100, Repeat: 1}

	first, err := Run(testContext(t), cfg)
	require.NoError(t, err)

	second, err := Run(testContext(t), cfg)
	require.NoError(t, err)

	for i := range first.Results {
		assert.Equal(t, first.Results[i].Fingerprint, second.Results[i].Fingerprint)
	}

	assert.NotEqual(t, first.RunID, second.RunID)

	cfg.Seed = 4
	third, err := Run(testContext(t), cfg)
	require.NoError(t, err)
	assert.NotEqual(t, first.Results[0].Fingerprint, third.Results[0].Fingerprint)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	report, err := Run(ctx, DefaultConfig())
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Results)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Run(testContext(t), Config{})
	require.Error(t, err)
}

func TestRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 2.5, ratio(5*time.Microsecond, 2*time.Microsecond), 1e-9)
	assert.InDelta(t, 10.0, ratio(10*time.Nanosecond, 0), 1e-9)
}
