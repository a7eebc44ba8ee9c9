package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculator type constants for saved ads
const (
	CalculatorDRE     = "dre"
	CalculatorPricing = "pricing"
)

// SavedAd is a calculator snapshot a user saved as a draft listing
type SavedAd struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Name           string         `json:"name"`
	CalculatorType string         `json:"calculator_type"`
	CalcData       map[string]any `json:"calc_data"`
	PhotoURL       *string        `json:"photo_url,omitempty"`
	Comment        *string        `json:"comment,omitempty"`
	Tags           []string       `json:"tags"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
