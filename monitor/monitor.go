// Package monitor exposes prometheus metrics for maze generation.
package monitor

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the generation and cache collectors of one registry.
type Metrics struct {
	MazesGenerated     prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	GenerationDuration prometheus.Histogram
	MazeCells          prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewMetrics creates the maze metrics and registers them with reg. A nil reg
// gets a fresh registry.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		MazesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mazes_generated_total",
			Help:      "Number of mazes generated",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maze_cache_hits_total",
			Help:      "Seeded requests served from the cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "maze_cache_misses_total",
			Help:      "Seeded requests that had to generate",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maze_generation_seconds",
			Help:      "Time spent shuffling a maze",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}),
		MazeCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maze_cells",
			Help:      "Cell count of generated mazes",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 8),
		}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.MazesGenerated,
		m.CacheHits,
		m.CacheMisses,
		m.GenerationDuration,
		m.MazeCells,
	)

	return m
}

// ObserveGeneration records one generated maze.
func (m *Metrics) ObserveGeneration(cells int, duration time.Duration) {
	m.MazesGenerated.Inc()
	m.MazeCells.Observe(float64(cells))
	m.GenerationDuration.Observe(duration.Seconds())
}

// IncCacheHit counts a seeded request answered from the cache.
func (m *Metrics) IncCacheHit() {
	m.CacheHits.Inc()
}

// IncCacheMiss counts a seeded request that missed the cache.
func (m *Metrics) IncCacheMiss() {
	m.CacheMisses.Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
