package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics counts requests per endpoint, dialect and status, and times
// them per endpoint.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "conjugation",
			Name:      "requests_total",
			Help:      "API requests by endpoint, dialect and HTTP status.",
		}, []string{"endpoint", "dialect", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "conjugation",
			Name:      "request_duration_seconds",
			Help:      "API request latency by endpoint.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"endpoint"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}
