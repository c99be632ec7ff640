package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Total number of search requests, labeled by candidate source
	SearchRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_requests_total",
		Help: "Total number of search requests by candidate source",
	}, []string{"source"})

	// How many times the discovery source failed and the mock fixture was served
	CandidateSourceFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "candidate_source_fallbacks_total",
		Help: "Times the candidate source failed and mock data was served",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		SearchRequests,
		CandidateSourceFallbacks,
	)
}
