package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ChecksTotal prometheus.Counter
	DeniedTotal prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ChecksTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "valuesprism_ratelimit_checks_total",
			Help: "Total number of rate limit admission checks",
		}),
		DeniedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "valuesprism_ratelimit_denied_total",
			Help: "Total number of requests denied by the rate limiter",
		}),
	}
}

func (m *Metrics) IncrementChecks() {
	m.ChecksTotal.Inc()
}

func (m *Metrics) IncrementDenied() {
	m.DeniedTotal.Inc()
}
