// Package calc implements the pure financial calculators: marketplace
// pricing and DRE income statements. Both are stateless and safe for
// concurrent use.
package calc

import (
	"errors"

	"sellerhub/internal/domain"
)

// Domain errors: these input combinations are mathematically undefined,
// not internal failures.
var (
	// ErrZeroCostPrice is returned when cost price is zero, which makes
	// the markup undefined
	ErrZeroCostPrice = errors.New("cost price must be greater than zero")

	// ErrMarginTooHigh is returned when the desired margin is 100% or
	// more, which makes the base price undefined
	ErrMarginTooHigh = errors.New("desired margin must be below 100%")

	// ErrFeesExceedRevenue is returned when fees sum to 100% or more of
	// the sale price
	ErrFeesExceedRevenue = errors.New("marketplace fees must sum to below 100%")
)

// Pricing derives a recommended sale price from a cost price, a desired
// margin percentage (0-100, exclusive of 100) and a set of marketplace
// fee percentages. The fee map may be empty; its keys are arbitrary and
// only the values are summed.
func Pricing(costPrice, desiredMargin float64, fees map[string]float64) (*domain.PricingResult, error) {
	if costPrice == 0 {
		return nil, ErrZeroCostPrice
	}
	if desiredMargin >= 100 {
		return nil, ErrMarginTooHigh
	}

	totalFeePct := 0.0
	for _, fee := range fees {
		totalFeePct += fee
	}
	totalFeePct /= 100

	if totalFeePct >= 1 {
		return nil, ErrFeesExceedRevenue
	}

	basePrice := costPrice / (1 - desiredMargin/100)
	finalPrice := basePrice / (1 - totalFeePct)
	totalFees := finalPrice * totalFeePct
	actualProfit := finalPrice - costPrice - totalFees

	actualMargin := 0.0
	if finalPrice > 0 {
		actualMargin = actualProfit / finalPrice * 100
	}

	markup := (finalPrice/costPrice - 1) * 100

	return &domain.PricingResult{
		CostPrice:     costPrice,
		DesiredMargin: desiredMargin,
		Fees:          fees,
		TotalFeePct:   round2(totalFeePct * 100),
		BasePrice:     round2(basePrice),
		FinalPrice:    round2(finalPrice),
		TotalFees:     round2(totalFees),
		ActualProfit:  round2(actualProfit),
		ActualMargin:  round2(actualMargin),
		Markup:        round2(markup),
	}, nil
}
