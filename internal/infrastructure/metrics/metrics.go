// Package metrics exposes Prometheus collectors for the HTTP surface and the
// extraction pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voice_assistant"

// Metrics holds the service collectors.
//
// Metrics:
//   - voice_assistant_http_requests_total{method,route,status}
//   - voice_assistant_http_request_duration_seconds{method,route}
//   - voice_assistant_analysis_duration_seconds{backend}
//   - voice_assistant_extracted_items_total{kind}
//   - voice_assistant_records_persisted_total{table}
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	AnalysisDuration *prometheus.HistogramVec
	ExtractedItems   *prometheus.CounterVec
	RecordsPersisted *prometheus.CounterVec
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AnalysisDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Duration of text analysis in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"backend"},
		),
		ExtractedItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "extracted_items_total",
				Help:      "Total number of extracted items, sentinels excluded",
			},
			[]string{"kind"}, // "action_item", "meeting_date", "key_point"
		),
		RecordsPersisted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_persisted_total",
				Help:      "Total number of records written by voice processing",
			},
			[]string{"table"},
		),
	}
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAnalysis records how long one analysis took on backend
func (m *Metrics) ObserveAnalysis(backend string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.AnalysisDuration.WithLabelValues(backend).Observe(elapsed.Seconds())
}

// AddExtracted counts n extracted items of kind
func (m *Metrics) AddExtracted(kind string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.ExtractedItems.WithLabelValues(kind).Add(float64(n))
}

// AddPersisted counts n rows written to table
func (m *Metrics) AddPersisted(table string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RecordsPersisted.WithLabelValues(table).Add(float64(n))
}
