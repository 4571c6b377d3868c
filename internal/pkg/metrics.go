package pkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	LikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_like_toggles_total",
		Help: "Like toggles by outcome",
	}, []string{"result"})

	EventPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_event_publish_failures_total",
		Help: "Domain events that could not be published",
	})
)
