package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fastly_promise",
			Name:      "requests_total",
			Help:      "API round trips issued, by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fastly_promise",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of completed API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
