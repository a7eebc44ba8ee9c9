package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriceRange is a suggested min/max price window
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MarketInsight is the market analysis produced for a single product
type MarketInsight struct {
	AveragePrice     float64    `json:"average_price"`
	CompetitorsCount int        `json:"competitors_count"`
	MarketTrend      string     `json:"market_trend"`
	DemandLevel      string     `json:"demand_level"`
	CompetitionLevel string     `json:"competition_level"`
	SuggestedPrice   PriceRange `json:"suggested_price_range"`
	TopKeywords      []string   `json:"top_keywords"`
}

// MarketResearch is a persisted research record for a user's product
type MarketResearch struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	ProductName string         `json:"product_name"`
	Category    string         `json:"category"`
	SearchData  map[string]any `json:"search_data,omitempty"`
	Results     MarketInsight  `json:"results"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// KeywordTrend is a single keyword's growth within a trend report
type KeywordTrend struct {
	Keyword string  `json:"keyword"`
	Growth  float64 `json:"growth"`
	Volume  int     `json:"volume"`
}

// CategoryTrend is a category's growth within a trend report
type CategoryTrend struct {
	Name   string  `json:"name"`
	Growth float64 `json:"growth"`
}

// TrendReport is the market-wide trend summary for a category and period
type TrendReport struct {
	Period        string          `json:"period"`
	Category      string          `json:"category"`
	Trends        []KeywordTrend  `json:"trends"`
	TopCategories []CategoryTrend `json:"top_categories"`
}
