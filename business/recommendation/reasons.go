package recommendation

import (
	"fmt"

	"smartShopper/domain"
)

const (
	maxPros = 3
	maxCons = 2
)

// Confidence weights: how much evidence backs a recommendation.
const (
	confidenceWeightVolume = 0.6
	confidenceWeightRating = 0.4
	confidenceVolumeNorm   = 1000.0
)

// confidence combines review volume and average rating into a [0,1] metric,
// rounded to two decimals.
func confidence(agg domain.ReviewAggregate) float64 {
	volumeScore := float64(agg.TotalComments) / confidenceVolumeNorm
	if volumeScore > 1 {
		volumeScore = 1
	}
	ratingScore := agg.AverageRating / 5

	return round2(volumeScore*confidenceWeightVolume + ratingScore*confidenceWeightRating)
}

// buildReasoning produces 2-3 strategy-specific sentences citing concrete
// values from the product and its reviews.
func (c Config) buildReasoning(product domain.Product, agg domain.ReviewAggregate, strategy domain.StrategyType) []string {
	reasons := make([]string, 0, 3)

	switch strategy {
	case domain.StrategyFancy:
		reasons = append(reasons, fmt.Sprintf("%s carries a brand reputation score of %.2f", product.Brand, c.brandScore(product.Brand)))
		if len(agg.QualityIndicators) > 0 {
			top := agg.QualityIndicators[0]
			reasons = append(reasons, fmt.Sprintf("Reviews mention %q %d times as a quality trait", top.Indicator, top.Mentions))
		}
		reasons = append(reasons, fmt.Sprintf("Rated %.1f/5 across %d reviews", agg.AverageRating, agg.TotalComments))

	case domain.StrategyCostEffective:
		reasons = append(reasons, fmt.Sprintf("Priced at %.2f with an average rating of %.1f/5", product.Price, agg.AverageRating))
		if agg.TotalComments > 0 {
			reasons = append(reasons, fmt.Sprintf("%.0f%% of %d reviews are positive", agg.PositiveRatio()*100, agg.TotalComments))
		}
		reasons = append(reasons, "Strong value for money based on review feedback")

	case domain.StrategyPricePriority:
		reasons = append(reasons, fmt.Sprintf("Competitive price point of %.2f", product.Price))
		reasons = append(reasons, fmt.Sprintf("Average rating of %.1f/5 meets the quality baseline", agg.AverageRating))
		if len(agg.CommonIssues) == 0 {
			reasons = append(reasons, "No recurring issues reported by reviewers")
		} else {
			reasons = append(reasons, fmt.Sprintf("%d recurring issues reported by reviewers", len(agg.CommonIssues)))
		}
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	return reasons
}

// buildPros takes the first three positive aspects, falling back to a generic
// pair when review data carries none.
func buildPros(agg domain.ReviewAggregate) []string {
	if len(agg.PositiveAspects) == 0 {
		return []string{"Positive overall reception", "Consistent product quality"}
	}

	pros := make([]string, 0, maxPros)
	for _, aspect := range agg.PositiveAspects {
		pros = append(pros, aspect)
		if len(pros) == maxPros {
			break
		}
	}

	return pros
}

// buildCons takes the first two common issues, falling back to a generic
// single entry.
func buildCons(agg domain.ReviewAggregate) []string {
	if len(agg.CommonIssues) == 0 {
		return []string{"Limited review data on drawbacks"}
	}

	cons := make([]string, 0, maxCons)
	for _, issue := range agg.CommonIssues {
		cons = append(cons, issue)
		if len(cons) == maxCons {
			break
		}
	}

	return cons
}
