package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsScoredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_scored_total",
			Help: "Count of products scored by strategy.",
		},
		[]string{"strategy"},
	)

	RecommendationsSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_skipped_total",
			Help: "Count of products dropped from ranking because resolution failed.",
		},
		[]string{"strategy"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsScoredTotal, RecommendationsSkippedTotal)
}
