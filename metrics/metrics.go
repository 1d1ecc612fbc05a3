// Package metrics provides Prometheus metrics for log trail operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric names
const (
	MetricLogEntriesTotal      = "logtrail_log_entries_total"
	MetricLogAppendDuration    = "logtrail_log_append_duration_seconds"
	MetricLogTrailsPurgedTotal = "logtrail_log_trails_purged_total"
)

// Status values of an append
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics contains the collectors of the log trail. A nil *Metrics records
// nothing.
type Metrics struct {
	entriesTotal   *prometheus.CounterVec
	appendDuration *prometheus.HistogramVec
	trailsPurged   *prometheus.CounterVec
}

// NewMetrics creates the collectors without registering them
func NewMetrics() *Metrics {
	return &Metrics{
		entriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLogEntriesTotal,
				Help: "Total number of log entries appended by host type and status",
			},
			[]string{"host_type", "status"},
		),
		appendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricLogAppendDuration,
				Help:    "Histogram of log entry append duration in seconds by host type",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"host_type"},
		),
		trailsPurged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricLogTrailsPurgedTotal,
				Help: "Total number of log trails deleted together with their host",
			},
			[]string{"host_type"},
		),
	}
}

// Register registers all metrics with the given registry
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveAppend records one append attempt and its duration
func (m *Metrics) ObserveAppend(hostType string, seconds float64, err error) {
	if m == nil {
		return
	}

	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.entriesTotal.WithLabelValues(hostType, status).Inc()
	m.appendDuration.WithLabelValues(hostType).Observe(seconds)
}

// IncTrailsPurged counts a deleted trail
func (m *Metrics) IncTrailsPurged(hostType string) {
	if m == nil {
		return
	}
	m.trailsPurged.WithLabelValues(hostType).Inc()
}

// Collectors returns all Prometheus collectors
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.entriesTotal,
		m.appendDuration,
		m.trailsPurged,
	}
}
