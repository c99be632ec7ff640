package recommendation

import (
	"fmt"
	"math"
	"strings"

	"smartShopper/domain"
)

// Per-variant weights. Each variant's weights sum to 1.0.
const (
	fancyWeightBrand   = 0.30
	fancyWeightPremium = 0.25
	fancyWeightQuality = 0.25
	fancyWeightDesign  = 0.20

	costWeightValue      = 0.40
	costWeightDurability = 0.30
	costWeightWorthIt    = 0.20
	costWeightSentiment  = 0.10

	priceWeightCompetitive = 0.50
	priceWeightQuality     = 0.30
	priceWeightIssues      = 0.20
)

// Normalizers for keyword/mention sub-scores.
const (
	premiumMentionNorm    = 100.0
	designMentionNorm     = 100.0
	durabilityMentionNorm = 100.0
	worthItMentionNorm    = 50.0
	qualityMentionNorm    = 500.0

	fancyPriceCeiling    = 2000.0
	priorityPriceCeiling = 1500.0
)

var (
	premiumTerms    = []string{"premium", "luxury", "high-end", "premium quality"}
	designTerms     = []string{"design", "beautiful", "elegant", "stylish"}
	durabilityTerms = []string{"durable", "long-lasting", "reliable", "sturdy"}
	worthItTerms    = []string{"worth it", "good value", "great value", "worth every penny"}
)

// Score computes the strategy score for one product in [0,1], rounded to two
// decimals. Rounding is half-away-from-zero (math.Round), matching the rule
// relied on by ranking tie-break tests.
func (c Config) Score(product domain.Product, agg domain.ReviewAggregate, strategy domain.StrategyType) (float64, error) {
	var raw float64

	switch strategy {
	case domain.StrategyFancy:
		raw = c.scoreFancy(product, agg)
	case domain.StrategyCostEffective:
		raw = scoreCostEffective(product, agg)
	case domain.StrategyPricePriority:
		raw = scorePricePriority(product, agg)
	default:
		return 0, fmt.Errorf("unknown strategy type: %s", strategy)
	}

	return round2(clamp01(raw)), nil
}

func (c Config) scoreFancy(product domain.Product, agg domain.ReviewAggregate) float64 {
	brandReputation := clamp01(c.brandScore(product.Brand))
	premiumMentions := keywordMentionScore(agg.TopKeywords, premiumTerms, premiumMentionNorm)
	qualityMentions := topQualityMentionScore(agg.QualityIndicators)
	designMentions := keywordMentionScore(agg.TopKeywords, designTerms, designMentionNorm)

	return fancyWeightBrand*brandReputation +
		fancyWeightPremium*premiumMentions +
		fancyWeightQuality*qualityMentions +
		fancyWeightDesign*designMentions
}

func scoreCostEffective(product domain.Product, agg domain.ReviewAggregate) float64 {
	priceScore := clamp01((fancyPriceCeiling - product.Price) / fancyPriceCeiling)
	qualityScore := clamp01(agg.AverageRating / 5)
	valueScore := (priceScore + qualityScore) / 2

	durability := keywordMentionScore(agg.TopKeywords, durabilityTerms, durabilityMentionNorm)
	worthIt := keywordMentionScore(agg.TopKeywords, worthItTerms, worthItMentionNorm)
	sentiment := clamp01(agg.PositiveRatio())

	return costWeightValue*valueScore +
		costWeightDurability*durability +
		costWeightWorthIt*worthIt +
		costWeightSentiment*sentiment
}

func scorePricePriority(product domain.Product, agg domain.ReviewAggregate) float64 {
	competitive := clamp01((priorityPriceCeiling - product.Price) / priorityPriceCeiling)

	basicQuality := 1.0
	if agg.AverageRating < 4.0 {
		basicQuality = clamp01(agg.AverageRating / 4.0)
	}

	issueAvoidance := clamp01(1 - float64(len(agg.CommonIssues))/10)

	return priceWeightCompetitive*competitive +
		priceWeightQuality*basicQuality +
		priceWeightIssues*issueAvoidance
}

// keywordMentionScore sums the frequencies of keywords whose text contains any
// of the given terms, normalized and clamped to [0,1].
func keywordMentionScore(keywords []domain.KeywordCount, terms []string, norm float64) float64 {
	total := 0
	for _, kw := range keywords {
		lowered := strings.ToLower(kw.Keyword)
		for _, term := range terms {
			if strings.Contains(lowered, term) {
				total += kw.Frequency
				break
			}
		}
	}

	return clamp01(float64(total) / norm)
}

// topQualityMentionScore uses only the first (highest-mention) quality
// indicator, 0 when there are none.
func topQualityMentionScore(indicators []domain.QualityIndicator) float64 {
	if len(indicators) == 0 {
		return 0
	}
	return clamp01(float64(indicators[0].Mentions) / qualityMentionNorm)
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
