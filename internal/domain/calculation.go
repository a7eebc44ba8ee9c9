package domain

import (
	"time"

	"github.com/google/uuid"
)

// DREResult holds the derived fields of a DRE (income statement)
// calculation. All percentage fields are rounded to 2 decimals.
type DREResult struct {
	Revenue       float64 `json:"revenue"`
	TotalCosts    float64 `json:"total_costs"`
	TotalExpenses float64 `json:"total_expenses"`
	GrossProfit   float64 `json:"gross_profit"`
	NetProfit     float64 `json:"net_profit"`
	GrossMargin   float64 `json:"gross_margin"`
	NetMargin     float64 `json:"net_margin"`
	CostPct       float64 `json:"cost_percentage"`
	ExpensePct    float64 `json:"expense_percentage"`
}

// PricingResult holds the derived fields of a pricing calculation.
// Monetary and percentage fields are rounded to 2 decimals.
type PricingResult struct {
	CostPrice     float64            `json:"cost_price"`
	DesiredMargin float64            `json:"desired_margin"`
	Fees          map[string]float64 `json:"marketplace_fees"`
	TotalFeePct   float64            `json:"total_fee_percentage"`
	BasePrice     float64            `json:"base_price"`
	FinalPrice    float64            `json:"final_price"`
	TotalFees     float64            `json:"total_fees"`
	ActualProfit  float64            `json:"actual_profit"`
	ActualMargin  float64            `json:"actual_margin"`
	Markup        float64            `json:"markup"`
}

// DRECalculation is a persisted DRE statement for a reporting period
type DRECalculation struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Name        string             `json:"name"`
	PeriodStart time.Time          `json:"period_start"`
	PeriodEnd   time.Time          `json:"period_end"`
	Revenue     float64            `json:"revenue"`
	Costs       map[string]float64 `json:"costs"`
	Expenses    map[string]float64 `json:"expenses"`
	Results     DREResult          `json:"results"`
	CreatedAt   time.Time          `json:"created_at"`
}

// PricingCalculation is a persisted pricing calculation for a product
type PricingCalculation struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	ProductName     string             `json:"product_name"`
	CostPrice       float64            `json:"cost_price"`
	DesiredMargin   float64            `json:"desired_margin"`
	MarketplaceFees map[string]float64 `json:"marketplace_fees"`
	CalculatedPrice float64            `json:"calculated_price"`
	CalculationData PricingResult      `json:"calculation_data"`
	CreatedAt       time.Time          `json:"created_at"`
}
