package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Matchmaker
	QuizSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_submissions_total",
			Help: "Matchmaker quiz submissions by outcome",
		},
		[]string{"outcome"},
	)

	InterestsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matchmaker_interests_added_total",
			Help: "Interest edges newly created by matchmaker submissions",
		},
	)

	// Recommendations
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to score candidates and compose rails",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RailItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_rail_items",
			Help:    "Number of items per composed rail",
			Buckets: []float64{1, 2, 4, 6, 10, 20, 50},
		},
		[]string{"rail"},
	)

	// WebSocket
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)
)
