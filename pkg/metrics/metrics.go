package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerai_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careerai_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	FlowTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerai_flow_transitions_total",
			Help: "Wizard transitions applied, by flow and action",
		},
		[]string{"flow", "action"},
	)

	ResumeUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerai_resume_uploads_total",
			Help: "Resume file selections, by outcome",
		},
		[]string{"result"},
	)

	SavedJobToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerai_saved_job_toggles_total",
			Help: "Saved-job toggles, by direction",
		},
		[]string{"direction"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "careerai_sessions_active",
			Help: "Sessions currently held by the in-memory store",
		},
	)
)
