package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "batihr"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Submission kinds used as metric labels.
const (
	KindContact     = "contact"
	KindAppointment = "appointment"
	KindDevis       = "devis"
	KindApplication = "application"
)

// Business metrics
var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of form submissions received",
		},
		[]string{"kind", "status"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Total number of notification emails attempted",
		},
		[]string{"kind", "outcome"},
	)

	DocumentsStoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_stored_total",
			Help:      "Total number of uploaded files persisted",
		},
		[]string{"kind"},
	)
)

// RecordSubmission increments the submission counter for one form kind.
// Status is "accepted", "rejected" or "notify_failed".
func RecordSubmission(kind, status string) {
	SubmissionsTotal.WithLabelValues(kind, status).Inc()
}

// RecordEmail increments the email counter. Outcome is "sent" or "failed".
func RecordEmail(kind, outcome string) {
	EmailsSentTotal.WithLabelValues(kind, outcome).Inc()
}
