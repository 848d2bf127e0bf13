package osc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes used as the "outcome" label.
const (
	OutcomeOK           = "ok"
	OutcomeHTTPError    = "http_error"
	OutcomeUnauthorized = "unauthorized"
	OutcomeTransport    = "transport_error"
)

// Metrics holds Prometheus collectors for client operations.
// A nil *Metrics disables collection.
type Metrics struct {
	requests      *prometheus.CounterVec   // By endpoint path and outcome
	duration      *prometheus.HistogramVec // By endpoint path
	statusPolls   *prometheus.CounterVec   // By command name
	previewFrames prometheus.Counter
}

// NewMetrics creates client metrics and registers them with reg.
// A nil reg returns nil metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osc",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests sent to the camera",
		}, []string{"endpoint", "outcome"}),

		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "osc",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Camera request round trip time in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),

		statusPolls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osc",
			Subsystem: "client",
			Name:      "status_polls_total",
			Help:      "Total number of command status polls",
		}, []string{"command"}),

		previewFrames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "osc",
			Subsystem: "client",
			Name:      "preview_frames_total",
			Help:      "Total number of live preview frames received",
		}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration, m.statusPolls, m.previewFrames} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordRequest(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) recordStatusPoll(command string) {
	if m == nil {
		return
	}
	m.statusPolls.WithLabelValues(command).Inc()
}

func (m *Metrics) recordPreviewFrame() {
	if m == nil {
		return
	}
	m.previewFrames.Inc()
}
