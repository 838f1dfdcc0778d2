// Copyright (c) 2026 Telugucine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics provides Prometheus instrumentation for the Telugucine API.

Metrics are registered on the default registry at package init via promauto
and exposed at /metrics by the api package.

Available Metrics:

  - http_requests_total: counter, labels method, route, status
  - http_request_duration_seconds: histogram, labels method, route
  - credit_resolutions_total: counter, label outcome (cache, alias, exact, boundary, miss)
  - credit_filmography_movies: histogram of distinct movies per built filmography
  - audit_duration_seconds: histogram of full duplicate-name audit runs
  - audit_movies_scanned_total: counter of movie rows visited by audits
*/
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes recorded by [RecordResolution].
const (
	OutcomeCache    = "cache"
	OutcomeAlias    = "alias"
	OutcomeExact    = "exact"
	OutcomeBoundary = "boundary"
	OutcomeMiss     = "miss"
)

var (
	// HTTP Metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)

	// Credit Resolution Metrics
	CreditResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_resolutions_total",
			Help: "Total number of slug-to-person resolutions by outcome",
		},
		[]string{"outcome"},
	)

	CreditFilmographySize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "credit_filmography_movies",
			Help:    "Distinct movies in each aggregated filmography",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Audit Metrics
	AuditDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "audit_duration_seconds",
			Help:    "Duration of duplicate-name audit runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	AuditMoviesScanned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_movies_scanned_total",
			Help: "Total number of movie rows visited by audits",
		},
	)
)

// RecordHTTPRequest records one finished HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordResolution counts a slug resolution by the step that answered it.
func RecordResolution(outcome string) {
	CreditResolutions.WithLabelValues(outcome).Inc()
}

// RecordFilmography observes the size of an aggregated filmography.
func RecordFilmography(distinctMovies int) {
	CreditFilmographySize.Observe(float64(distinctMovies))
}

// RecordAudit records a completed audit run.
func RecordAudit(scanned int, duration time.Duration) {
	AuditMoviesScanned.Add(float64(scanned))
	AuditDuration.Observe(duration.Seconds())
}
