package dto

// CreateDRERequest represents the persisted DRE calculation payload
type CreateDRERequest struct {
	Name        string             `json:"name" validate:"required,min=2,max=255"`
	PeriodStart string             `json:"period_start" validate:"required,datetime=2006-01-02"`
	PeriodEnd   string             `json:"period_end" validate:"required,datetime=2006-01-02"`
	Revenue     float64            `json:"revenue" validate:"gte=0"`
	Costs       map[string]float64 `json:"costs" validate:"required"`
	Expenses    map[string]float64 `json:"expenses" validate:"required"`
}

// QuickDRERequest represents the quick (non-persisted) DRE payload
type QuickDRERequest struct {
	Revenue  float64            `json:"revenue" validate:"gte=0"`
	Costs    map[string]float64 `json:"costs" validate:"required"`
	Expenses map[string]float64 `json:"expenses" validate:"required"`
}

// CreatePricingRequest represents the persisted pricing calculation payload
type CreatePricingRequest struct {
	ProductName     string             `json:"product_name" validate:"required,min=2,max=255"`
	CostPrice       float64            `json:"cost_price" validate:"gte=0"`
	DesiredMargin   float64            `json:"desired_margin" validate:"gte=0,lt=100"`
	MarketplaceFees map[string]float64 `json:"marketplace_fees" validate:"omitempty,dive,gte=0"`
}

// QuickPricingRequest represents the quick (non-persisted) pricing payload
type QuickPricingRequest struct {
	CostPrice       float64            `json:"cost_price" validate:"gte=0"`
	DesiredMargin   float64            `json:"desired_margin" validate:"gte=0,lt=100"`
	MarketplaceFees map[string]float64 `json:"marketplace_fees" validate:"omitempty,dive,gte=0"`
}
