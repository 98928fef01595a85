package main

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsRegistry is private so that exports contain only search metrics.
var metricsRegistry = prometheus.NewRegistry()

var (
	searchNodes = promauto.With(metricsRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "geode_search_nodes_total",
		Help: "Search nodes visited",
	}, []string{"horizon"})

	searchMemoHits = promauto.With(metricsRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "geode_search_memo_hits_total",
		Help: "Search nodes answered from the memo table",
	}, []string{"horizon"})

	searchPruned = promauto.With(metricsRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "geode_search_pruned_total",
		Help: "Search nodes abandoned by the dominance bound",
	}, []string{"horizon"})

	solvesTotal = promauto.With(metricsRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "geode_solves_total",
		Help: "Blueprint evaluations by where the answer came from",
	}, []string{"horizon", "source"})

	solveDuration = promauto.With(metricsRegistry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geode_solve_duration_seconds",
		Help:    "Time to search one blueprint",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 9),
	}, []string{"horizon"})
)

func observeSolve(horizon int, stats SearchStats, elapsed time.Duration) {
	h := strconv.Itoa(horizon)
	searchNodes.WithLabelValues(h).Add(float64(stats.Nodes))
	searchMemoHits.WithLabelValues(h).Add(float64(stats.MemoHits))
	searchPruned.WithLabelValues(h).Add(float64(stats.Pruned))
	solvesTotal.WithLabelValues(h, "search").Inc()
	solveDuration.WithLabelValues(h).Observe(elapsed.Seconds())
}

func observeStoreHit(horizon int) {
	solvesTotal.WithLabelValues(strconv.Itoa(horizon), "store").Inc()
}

// WriteMetrics dumps the search metrics in the Prometheus text format.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, metricsRegistry)
}
