// Package metrics records series generation in Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tsgen"

// Metrics implements tsgen.Observer.
type Metrics struct {
	series   *prometheus.CounterVec
	samples  prometheus.Counter
	duration prometheus.Histogram
}

// New registers the generation collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		series: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "series_total",
			Help:      "Series generated, by outcome.",
		}, []string{"status"}),
		samples: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Samples in successfully generated series.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_seconds",
			Help:      "Time spent generating one series.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

func (m *Metrics) ObserveSeries(_ string, samples int, elapsed time.Duration, err error) {
	m.duration.Observe(elapsed.Seconds())
	if err != nil {
		m.series.WithLabelValues("error").Inc()
		return
	}
	m.series.WithLabelValues("ok").Inc()
	m.samples.Add(float64(samples))
}
