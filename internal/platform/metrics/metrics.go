package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports on /metrics.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CacheOutcomesTotal *prometheus.CounterVec
	CacheFailuresTotal *prometheus.CounterVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	CircuitBreakerState     *prometheus.GaugeVec

	ConversionsTotal *prometheus.CounterVec
	QuotaRemaining   prometheus.Gauge
}

// New registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		CacheOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_cache_outcomes_total",
				Help: "Rate cache lookups by kind and outcome (fresh, fetched, stale)",
			},
			[]string{"kind", "outcome"},
		),

		CacheFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_cache_failures_total",
				Help: "Rate lookups that failed with no cached fallback",
			},
			[]string{"kind"},
		),

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Calls to the rate provider by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),

		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Rate provider call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		CircuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Total number of currency conversions by identity kind",
			},
			[]string{"identity"},
		),

		QuotaRemaining: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "upstream_quota_remaining",
				Help: "Monthly provider requests remaining as last reported",
			},
		),
	}
}

func (m *Metrics) ObserveCacheOutcome(kind, outcome string) {
	if m == nil {
		return
	}
	m.CacheOutcomesTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) ObserveCacheFailure(kind string) {
	if m == nil {
		return
	}
	m.CacheFailuresTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveUpstream(endpoint, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(endpoint, result).Inc()
	m.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) SetBreakerState(name string, state float64) {
	if m == nil {
		return
	}
	m.CircuitBreakerState.WithLabelValues(name).Set(state)
}

func (m *Metrics) ObserveConversion(identityKind string) {
	if m == nil {
		return
	}
	m.ConversionsTotal.WithLabelValues(identityKind).Inc()
}

func (m *Metrics) SetQuotaRemaining(remaining int) {
	if m == nil {
		return
	}
	m.QuotaRemaining.Set(float64(remaining))
}

func (m *Metrics) ObserveHTTP(path, method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(path, method, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}
