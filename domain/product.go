package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id              TEXT PRIMARY KEY,
//     name            TEXT NOT NULL,
//     price           NUMERIC NOT NULL,
//     brand           TEXT NOT NULL,
//     category        TEXT,
//     rating          NUMERIC,
//     review_count    INTEGER DEFAULT 0,
//     source_platform TEXT,
//     image_url       TEXT,
//     product_url     TEXT,
//     description     TEXT,
//     features        JSONB,
//     specifications  JSONB,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID             string            `gorm:"primaryKey;column:id" json:"id"`
	Name           string            `gorm:"column:name;type:text;not null" json:"name"`
	Price          float64           `gorm:"column:price;type:numeric" json:"price"`
	Brand          string            `gorm:"column:brand;type:text;not null" json:"brand"`
	Category       string            `gorm:"column:category;type:text" json:"category"`
	Rating         *float64          `gorm:"column:rating;type:numeric" json:"rating"`
	ReviewCount    int               `gorm:"column:review_count;default:0" json:"review_count"`
	SourcePlatform string            `gorm:"column:source_platform;type:text" json:"source_platform"`
	ImageURL       string            `gorm:"column:image_url;type:text" json:"image_url"`
	ProductURL     string            `gorm:"column:product_url;type:text" json:"product_url"`
	Description    string            `gorm:"column:description;type:text" json:"description"`
	Features       datatypes.JSON    `gorm:"column:features;type:jsonb" json:"features"`
	Specifications datatypes.JSONMap `gorm:"column:specifications;type:jsonb" json:"specifications"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// RatingValue returns the rating, or 0 when the product is unrated.
func (p Product) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
