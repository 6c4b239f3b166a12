package matching

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_rankings_total",
			Help: "Total number of candidate ranking requests",
		},
		[]string{"outcome"},
	)

	resultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_result_size",
			Help:    "Number of candidates returned per ranking",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	rankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "matching_ranking_duration_seconds",
			Help:    "Time spent producing a ranked candidate list",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordRanking records one ranking attempt. Size is only observed on
// success so failed requests don't skew the distribution.
func RecordRanking(outcome string, size int, duration time.Duration) {
	rankingsTotal.WithLabelValues(outcome).Inc()
	rankingDuration.Observe(duration.Seconds())

	if outcome == "ok" {
		resultSize.Observe(float64(size))
	}
}
