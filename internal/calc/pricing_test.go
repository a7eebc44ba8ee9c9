package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing_NoFees(t *testing.T) {
	result, err := Pricing(100, 50, map[string]float64{})
	require.NoError(t, err)

	assert.Equal(t, 200.00, result.BasePrice)
	assert.Equal(t, 200.00, result.FinalPrice)
	assert.Equal(t, 0.00, result.TotalFeePct)
	assert.Equal(t, 0.00, result.TotalFees)
	assert.Equal(t, 100.00, result.ActualProfit)
	assert.Equal(t, 50.00, result.ActualMargin)
	assert.Equal(t, 100.00, result.Markup)
}

func TestPricing_WithFees(t *testing.T) {
	fees := map[string]float64{
		"marketplace": 12,
		"payment":     3,
	}

	result, err := Pricing(50, 40, fees)
	require.NoError(t, err)

	// base = 50/(1-0.40) = 83.333..., final = base/(1-0.15) = 98.0392...
	assert.Equal(t, 15.00, result.TotalFeePct)
	assert.Equal(t, 83.33, result.BasePrice)
	assert.Equal(t, 98.04, result.FinalPrice)
	assert.Equal(t, 14.71, result.TotalFees)
	assert.Equal(t, 33.33, result.ActualProfit)
	assert.Equal(t, 34.00, result.ActualMargin)
	assert.Equal(t, 96.08, result.Markup)
}

func TestPricing_FinalPriceAlwaysAboveCost(t *testing.T) {
	costs := []float64{1, 99.99, 1500}
	margins := []float64{0, 10, 55, 99}
	feeSets := []map[string]float64{
		nil,
		{"a": 5},
		{"a": 40, "b": 30, "c": 29},
	}

	for _, cost := range costs {
		for _, margin := range margins {
			for _, fees := range feeSets {
				result, err := Pricing(cost, margin, fees)
				require.NoError(t, err)

				if margin == 0 && len(fees) == 0 {
					assert.Equal(t, round2(cost), result.FinalPrice)
					continue
				}
				assert.Greater(t, result.FinalPrice, cost,
					"cost=%v margin=%v fees=%v", cost, margin, fees)
			}
		}
	}
}

func TestPricing_FeesLowerActualMargin(t *testing.T) {
	// With fees the realized margin lands below the desired one: the
	// fee share is carved out of the sale price after the margin gross-up.
	result, err := Pricing(100, 30, map[string]float64{"marketplace": 10})
	require.NoError(t, err)

	assert.Less(t, result.ActualMargin, 30.0)
}

func TestPricing_ZeroCostPrice(t *testing.T) {
	_, err := Pricing(0, 50, nil)
	assert.ErrorIs(t, err, ErrZeroCostPrice)
}

func TestPricing_MarginTooHigh(t *testing.T) {
	_, err := Pricing(100, 100, nil)
	assert.ErrorIs(t, err, ErrMarginTooHigh)

	_, err = Pricing(100, 150, nil)
	assert.ErrorIs(t, err, ErrMarginTooHigh)
}

func TestPricing_FeesExceedRevenue(t *testing.T) {
	_, err := Pricing(100, 50, map[string]float64{"a": 60, "b": 40})
	assert.ErrorIs(t, err, ErrFeesExceedRevenue)

	_, err = Pricing(100, 50, map[string]float64{"a": 120})
	assert.ErrorIs(t, err, ErrFeesExceedRevenue)
}

func TestPricing_Deterministic(t *testing.T) {
	fees := map[string]float64{"marketplace": 11.5, "payment": 4.99}

	first, err := Pricing(73.45, 37.5, fees)
	require.NoError(t, err)
	second, err := Pricing(73.45, 37.5, fees)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.01, round2(0.005))
	assert.Equal(t, -0.01, round2(-0.005))
	assert.Equal(t, 2.35, round2(2.345))
	assert.Equal(t, 1.0, round2(0.999999))
}
