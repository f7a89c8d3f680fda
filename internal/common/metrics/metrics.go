// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_submissions_received_total",
			Help: "Total number of submissions received by the relay",
		},
	)

	SubmissionsForwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submissions_forwarded_total",
			Help: "Total number of submissions forwarded to the recorder",
		},
		[]string{"outcome"},
	)

	SubmissionsRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_submissions_rate_limited_total",
			Help: "Total number of submissions rejected by the rate limiter",
		},
	)

	RowsAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_rows_appended_total",
			Help: "Total number of application rows appended to the recording surface",
		},
	)

	NotificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_notification_failures_total",
			Help: "Total number of failed notification dispatches",
		},
		[]string{"recipient"},
	)

	ExportRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_export_requests_total",
			Help: "Total number of bulk export requests",
		},
		[]string{"outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "intake_request_duration_seconds",
			Help: "Duration of request processing in seconds",
		},
		[]string{"route"},
	)
)
