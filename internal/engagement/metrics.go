package engagement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_likes_total",
			Help: "Total number of new likes",
		},
	)

	matchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_matches_total",
			Help: "Total number of mutual matches formed",
		},
	)

	viewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagement_profile_views_total",
			Help: "Total number of profile views recorded",
		},
	)
)

func RecordLike(matched bool) {
	likesTotal.Inc()
	if matched {
		matchesTotal.Inc()
	}
}

func RecordView() {
	viewsTotal.Inc()
}
