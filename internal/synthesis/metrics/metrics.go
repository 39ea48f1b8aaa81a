package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal  *prometheus.CounterVec
	FallbacksTotal prometheus.Counter
	Duration       prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "valuesprism_synthesis_requests_total",
			Help: "Total definition synthesis requests by outcome",
		}, []string{"outcome"}),
		FallbacksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "valuesprism_synthesis_fallbacks_total",
			Help: "Total individual definitions served from the fallback generator",
		}),
		Duration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "valuesprism_synthesis_duration_seconds",
			Help:    "Model call latency for definition synthesis",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
	}
}

func (m *Metrics) IncrementRequests(outcome string) {
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddFallbacks(n int) {
	m.FallbacksTotal.Add(float64(n))
}

func (m *Metrics) ObserveDuration(d time.Duration) {
	m.Duration.Observe(d.Seconds())
}
