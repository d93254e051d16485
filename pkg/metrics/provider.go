package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderMetrics records calls to the fulfillment provider API.
type ProviderMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewProviderMetrics registers the provider metrics on the provided registerer.
func NewProviderMetrics(reg prometheus.Registerer) *ProviderMetrics {
	if reg == nil {
		return &ProviderMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_requests_total",
		Help: "Fulfillment provider requests by operation and outcome.",
	}, []string{"operation", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provider_request_duration_seconds",
		Help:    "Fulfillment provider request duration by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	reg.MustRegister(requests, duration)
	return &ProviderMetrics{requests: requests, duration: duration}
}

// ObserveCall records a completed provider call.
func (p *ProviderMetrics) ObserveCall(operation string, err error, duration time.Duration) {
	if p == nil || p.requests == nil {
		return
	}
	operation = normalizeLabel(operation)
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	p.requests.WithLabelValues(operation, outcome).Inc()
	p.duration.WithLabelValues(operation).Observe(duration.Seconds())
}
