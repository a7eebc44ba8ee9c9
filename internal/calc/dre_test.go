package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDRE_Basic(t *testing.T) {
	result := DRE(1000,
		map[string]float64{"materials": 400},
		map[string]float64{"rent": 200},
	)

	assert.Equal(t, 1000.0, result.Revenue)
	assert.Equal(t, 400.0, result.TotalCosts)
	assert.Equal(t, 200.0, result.TotalExpenses)
	assert.Equal(t, 600.0, result.GrossProfit)
	assert.Equal(t, 400.0, result.NetProfit)
	assert.Equal(t, 60.00, result.GrossMargin)
	assert.Equal(t, 40.00, result.NetMargin)
	assert.Equal(t, 40.00, result.CostPct)
	assert.Equal(t, 20.00, result.ExpensePct)
}

func TestDRE_MultipleLineItems(t *testing.T) {
	costs := map[string]float64{
		"materials": 250,
		"freight":   50,
		"packaging": 100,
	}
	expenses := map[string]float64{
		"rent":      120,
		"marketing": 80,
	}

	result := DRE(1000, costs, expenses)

	assert.Equal(t, 400.0, result.TotalCosts)
	assert.Equal(t, 200.0, result.TotalExpenses)
	assert.Equal(t, 600.0, result.GrossProfit)
	assert.Equal(t, 400.0, result.NetProfit)
}

func TestDRE_ZeroRevenue(t *testing.T) {
	result := DRE(0, map[string]float64{}, map[string]float64{})

	assert.Equal(t, 0.0, result.GrossMargin)
	assert.Equal(t, 0.0, result.NetMargin)
	assert.Equal(t, 0.0, result.CostPct)
	assert.Equal(t, 0.0, result.ExpensePct)
}

func TestDRE_ZeroRevenueWithCosts(t *testing.T) {
	// Losses are reported, ratios stay 0 rather than dividing by zero
	result := DRE(0, map[string]float64{"materials": 300}, map[string]float64{"rent": 100})

	assert.Equal(t, -300.0, result.GrossProfit)
	assert.Equal(t, -400.0, result.NetProfit)
	assert.Equal(t, 0.0, result.GrossMargin)
	assert.Equal(t, 0.0, result.NetMargin)
}

func TestDRE_NegativeProfitIsValid(t *testing.T) {
	result := DRE(500, map[string]float64{"materials": 600}, map[string]float64{"rent": 100})

	assert.Equal(t, -100.0, result.GrossProfit)
	assert.Equal(t, -200.0, result.NetProfit)
	assert.Equal(t, -20.00, result.GrossMargin)
	assert.Equal(t, -40.00, result.NetMargin)
}

func TestDRE_Deterministic(t *testing.T) {
	costs := map[string]float64{"a": 123.45, "b": 67.89}
	expenses := map[string]float64{"c": 11.11}

	first := DRE(987.65, costs, expenses)
	second := DRE(987.65, costs, expenses)

	assert.Equal(t, first, second)
}

func TestDRE_NilMaps(t *testing.T) {
	result := DRE(100, nil, nil)

	assert.Equal(t, 0.0, result.TotalCosts)
	assert.Equal(t, 100.0, result.GrossProfit)
	assert.Equal(t, 100.00, result.GrossMargin)
}
