package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose password hash in JSON
	Plan         Plan      `json:"plan"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserStats aggregates per-user record counts across the product areas
type UserStats struct {
	MarketResearches    int64     `json:"market_researches"`
	StoreConnections    int64     `json:"store_connections"`
	DRECalculations     int64     `json:"dre_calculations"`
	PricingCalculations int64     `json:"pricing_calculations"`
	SyncedProducts      int64     `json:"synced_products"`
	SavedAds            int64     `json:"saved_ads"`
	LastActivity        time.Time `json:"last_activity"`
}
