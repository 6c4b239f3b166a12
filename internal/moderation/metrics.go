package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blocksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moderation_blocks_total",
			Help: "Total number of block actions",
		},
	)

	reportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moderation_reports_total",
			Help: "Total number of report submissions",
		},
	)
)

func RecordBlock() {
	blocksTotal.Inc()
}

func RecordReport() {
	reportsTotal.Inc()
}
