package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// planTotal counts Plan calls by mode and result (ok, no_path, error).
	planTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_plan_total",
		Help: "Total trip plans by mode and result",
	}, []string{"mode", "result"})

	// planDuration tracks Plan latency including cache lookups.
	planDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvroute_plan_duration_seconds",
		Help:    "Trip plan duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"mode"})

	// planLegs tracks the number of roads per itinerary.
	planLegs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvroute_plan_legs",
		Help:    "Number of roads per planned itinerary",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	})

	// searchCache counts search-result cache lookups by result (hit, miss).
	searchCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvroute_search_cache_total",
		Help: "Shortest-path search cache lookups by result",
	}, []string{"result"})
)
