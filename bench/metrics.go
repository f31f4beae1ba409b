package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	algorithmBinsort   = "binsort"
	algorithmReference = "reference"
)

type metrics struct {
	duration *prometheus.HistogramVec
	runs     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "binsort_bench_duration_seconds",
			Help:    "Best observed time to sort one benchmark input",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), //nolint:mnd
		}, []string{"algorithm"}),

		runs: factory.NewCounter(prometheus.CounterOpts{
			Name: "binsort_bench_runs_total",
			Help: "The total number of benchmark sizes measured",
		}),
	}
}
