package analysis

import (
	"math"

	"smartShopper/domain"
)

// Truth score weights: how much each review signal contributes. Weights sum
// to 1.0; recurring issues subtract a flat penalty per issue afterwards.
const (
	weightSentiment = 0.40
	weightRating    = 0.25
	weightVolume    = 0.20
	weightQuality   = 0.15

	volumeNorm         = 1000.0
	qualityMentionNorm = 500.0

	issuePenalty = 0.02
	maxIssues    = 10
)

// truthScore maps a review aggregate onto the 0-100 reliability scale.
func truthScore(agg domain.ReviewAggregate) float64 {
	sentiment := clamp01(agg.PositiveRatio())
	rating := clamp01(agg.AverageRating / 5)

	volume := float64(agg.TotalComments) / volumeNorm
	if volume > 1 {
		volume = 1
	}

	quality := 0.0
	if len(agg.QualityIndicators) > 0 {
		quality = clamp01(float64(agg.QualityIndicators[0].Mentions) / qualityMentionNorm)
	}

	base := weightSentiment*sentiment +
		weightRating*rating +
		weightVolume*volume +
		weightQuality*quality

	issues := len(agg.CommonIssues)
	if issues > maxIssues {
		issues = maxIssues
	}

	return round2(clamp01(base-issuePenalty*float64(issues)) * 100)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
