package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedway_client",
			Name:      "requests_total",
			Help:      "Reaction API calls issued (retries count as one call).",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "feedway_client",
			Name:      "request_failures_total",
			Help:      "Reaction API calls that failed after exhausting the retry policy.",
		},
		[]string{"operation"},
	)
)
