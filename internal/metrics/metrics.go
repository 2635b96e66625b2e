// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for provider requests.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	registerOnce sync.Once

	providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_lookup",
		Name:      "provider_requests_total",
		Help:      "Total number of metadata provider requests by provider and outcome",
	}, []string{"provider", "outcome"})
	providerDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "book_lookup",
		Name:      "provider_request_duration_seconds",
		Help:      "Histogram of metadata provider request durations in seconds by provider",
		Buckets:   prometheus.ExponentialBuckets(0.05, 1.8, 10), // ~50ms up to the 10s timeout
	}, []string{"provider"})
	lookupFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "book_lookup",
		Name:      "lookup_fallbacks_total",
		Help:      "Total number of searches that fell back past the primary provider",
	})
	lookupFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_lookup",
		Name:      "lookup_failures_total",
		Help:      "Total number of lookups that produced no result by operation",
	}, []string{"operation"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(providerRequests, providerDuration, lookupFallbacks, lookupFailures)
	})
}

// ObserveProviderRequest records one provider call.
func ObserveProviderRequest(provider, outcome string, d time.Duration) {
	providerRequests.WithLabelValues(provider, outcome).Inc()
	providerDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func IncFallback()                      { lookupFallbacks.Inc() }
func IncLookupFailure(operation string) { lookupFailures.WithLabelValues(operation).Inc() }
