// Package observability содержит метрики Prometheus сервиса.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "incident_api"

// Metrics хранит счетчики и гистограммы API
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route

	IncidentsCreated  prometheus.Counter
	StatusChanges     *prometheus.CounterVec   // labels: status
	QueryResultSize   *prometheus.HistogramVec // labels: mode={list,export}
	CacheLookups      *prometheus.CounterVec   // labels: result={hit,miss,error}
	EventPublishFails prometheus.Counter
	RateLimited       prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
		IncidentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_created_total",
			Help:      "Incidents created, including demo seeds.",
		}),
		StatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incident_status_changes_total",
			Help:      "Status updates by target status.",
		}, []string{"status"}),
		QueryResultSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_result_size",
			Help:      "Number of incidents returned per list or export query.",
			Buckets:   []float64{0, 1, 10, 25, 50, 100, 200, 500, 1000},
		}, []string{"mode"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Incident cache lookups by result.",
		}, []string{"result"}),
		EventPublishFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_failures_total",
			Help:      "Incident events that could not be published.",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.IncidentsCreated,
		m.StatusChanges,
		m.QueryResultSize,
		m.CacheLookups,
		m.EventPublishFails,
		m.RateLimited,
	}
}

// NewMetrics создает метрики и регистрирует их в глобальном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting создает метрики в отдельном реестре, чтобы повторные
// вызовы из тестов не паниковали с "already registered".
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	prometheus.NewRegistry().MustRegister(m.collectors()...)
	return m
}
