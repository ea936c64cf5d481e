package main

import (
	"time"

	"github.com/rcrowley/go-metrics"
)

const (
	metricComparisons = "sort.comparisons"
	metricSwaps       = "sort.swaps"
	metricSelfSwaps   = "sort.self_swaps"
	metricMoves       = "sort.moves"
	metricDuration    = "sort.duration"
)

// SortStats is a point-in-time copy of the counters collected during a sort
type SortStats struct {
	Comparisons int64
	Swaps       int64
	SelfSwaps   int64
	Moves       int64
	Duration    time.Duration
}

// SortMetrics collects operation counts for one SortingDemo run
type SortMetrics struct {
	registry    metrics.Registry
	comparisons metrics.Counter
	swaps       metrics.Counter
	selfSwaps   metrics.Counter
	moves       metrics.Counter
	duration    metrics.Timer
}

func NewSortMetrics() *SortMetrics {
	r := metrics.NewRegistry()
	return &SortMetrics{
		registry:    r,
		comparisons: metrics.GetOrRegisterCounter(metricComparisons, r),
		swaps:       metrics.GetOrRegisterCounter(metricSwaps, r),
		selfSwaps:   metrics.GetOrRegisterCounter(metricSelfSwaps, r),
		moves:       metrics.GetOrRegisterCounter(metricMoves, r),
		duration:    metrics.GetOrRegisterTimer(metricDuration, r),
	}
}

func (m *SortMetrics) markComparison() {
	m.comparisons.Inc(1)
}

func (m *SortMetrics) markSwap(first, second int) {
	m.swaps.Inc(1)
	if first == second {
		m.selfSwaps.Inc(1)
	}
}

func (m *SortMetrics) markMove() {
	m.moves.Inc(1)
}

func (m *SortMetrics) observeSince(start time.Time) {
	m.duration.UpdateSince(start)
}

// Snapshot returns the current counter values
func (m *SortMetrics) Snapshot() SortStats {
	return SortStats{
		Comparisons: m.comparisons.Count(),
		Swaps:       m.swaps.Count(),
		SelfSwaps:   m.selfSwaps.Count(),
		Moves:       m.moves.Count(),
		Duration:    time.Duration(m.duration.Sum()),
	}
}

// Registry exposes the underlying registry, e.g. for metrics.WriteOnce
func (m *SortMetrics) Registry() metrics.Registry {
	return m.registry
}
