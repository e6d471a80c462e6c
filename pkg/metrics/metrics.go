// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GatewayRequestsTotal counts booking API calls by outcome.
	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "land_booker_gateway_requests_total",
			Help: "Total booking API requests",
		},
		[]string{"method", "endpoint", "outcome"},
	)

	// GatewayRequestDuration tracks booking API latency.
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "land_booker_gateway_request_duration_seconds",
			Help:    "Booking API request duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// NotificationsTotal counts dispatched booking notifications per sink.
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "land_booker_notifications_total",
			Help: "Booking lifecycle notifications by sink and result",
		},
		[]string{"event", "sink", "result"},
	)

	// BotUpdatesTotal counts handled Telegram updates.
	BotUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "land_booker_bot_updates_total",
			Help: "Telegram updates handled by kind and result",
		},
		[]string{"kind", "result"},
	)

	// CacheEntries is the number of listings held per cache, expired ones
	// included until they are read or replaced.
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "land_booker_cache_entries",
			Help: "Listings held in the in-memory caches",
		},
		[]string{"cache"},
	)

	// ActiveSessions is the number of users with an open booking or cancel flow.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "land_booker_active_sessions",
			Help: "Sessions with an open booking or cancel flow",
		},
	)
)
