package domain

import (
	"time"

	"gorm.io/datatypes"
)

// KeywordCount is one entry of a review keyword histogram.
type KeywordCount struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// QualityIndicator counts how often a quality trait is mentioned in reviews.
type QualityIndicator struct {
	Indicator string `json:"indicator"`
	Mentions  int    `json:"mentions"`
}

// SentimentDistribution is the positive/negative/neutral review split.
// The three counts conventionally sum to TotalComments but this is not enforced.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// CREATE TABLE public.review_aggregates (
//     product_id      TEXT PRIMARY KEY REFERENCES products(id),
//     total_comments  INTEGER NOT NULL DEFAULT 0,
//     average_rating  NUMERIC NOT NULL DEFAULT 0,
//     sentiment       JSONB,
//     top_keywords    JSONB,
//     quality_indicators JSONB,
//     common_issues   JSONB,
//     positive_aspects JSONB,
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );

// ReviewAggregate is the pre-computed review summary for one product.
// It is read-only input to scoring; its lifecycle belongs to the
// review-analysis pipeline that fills the table.
type ReviewAggregate struct {
	ProductID         string                                  `gorm:"primaryKey;column:product_id" json:"product_id"`
	TotalComments     int                                     `gorm:"column:total_comments;default:0" json:"total_comments"`
	AverageRating     float64                                 `gorm:"column:average_rating;type:numeric" json:"average_rating"`
	Sentiment         datatypes.JSONType[SentimentDistribution] `gorm:"column:sentiment;type:jsonb" json:"sentiment"`
	TopKeywords       datatypes.JSONSlice[KeywordCount]       `gorm:"column:top_keywords;type:jsonb" json:"top_keywords"`
	QualityIndicators datatypes.JSONSlice[QualityIndicator]   `gorm:"column:quality_indicators;type:jsonb" json:"quality_indicators"`
	CommonIssues      datatypes.JSONSlice[string]             `gorm:"column:common_issues;type:jsonb" json:"common_issues"`
	PositiveAspects   datatypes.JSONSlice[string]             `gorm:"column:positive_aspects;type:jsonb" json:"positive_aspects"`
	UpdatedAt         time.Time                               `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ReviewAggregate) TableName() string {
	return "review_aggregates"
}

// PositiveRatio is the positive share of all comments, 0 when there are none.
func (a ReviewAggregate) PositiveRatio() float64 {
	if a.TotalComments <= 0 {
		return 0
	}
	return float64(a.Sentiment.Data().Positive) / float64(a.TotalComments)
}
