package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerhub/internal/calc"
	"sellerhub/internal/domain"
)

// CalculatorService runs the financial calculators and persists their
// results
type CalculatorService struct {
	dres     domain.DRERepository
	pricings domain.PricingRepository
}

// NewCalculatorService creates a new CalculatorService
func NewCalculatorService(dres domain.DRERepository, pricings domain.PricingRepository) *CalculatorService {
	return &CalculatorService{
		dres:     dres,
		pricings: pricings,
	}
}

// QuickDRE computes a DRE without persisting anything
func (s *CalculatorService) QuickDRE(revenue float64, costs, expenses map[string]float64) *domain.DREResult {
	return calc.DRE(revenue, costs, expenses)
}

// QuickPricing computes a pricing result without persisting anything
func (s *CalculatorService) QuickPricing(costPrice, desiredMargin float64, fees map[string]float64) (*domain.PricingResult, error) {
	return calc.Pricing(costPrice, desiredMargin, fees)
}

// CreateDRE computes and persists a DRE statement for a reporting period
func (s *CalculatorService) CreateDRE(ctx context.Context, userID uuid.UUID, name string, periodStart, periodEnd time.Time, revenue float64, costs, expenses map[string]float64) (*domain.DRECalculation, error) {
	results := calc.DRE(revenue, costs, expenses)

	dre := &domain.DRECalculation{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Revenue:     revenue,
		Costs:       costs,
		Expenses:    expenses,
		Results:     *results,
		CreatedAt:   time.Now(),
	}

	if err := s.dres.Create(ctx, dre); err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Error saving DRE calculation")
		return nil, err
	}

	return dre, nil
}

// ListDREs returns a page of the user's DRE calculations plus the total count
func (s *CalculatorService) ListDREs(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.DRECalculation, int64, error) {
	dres, err := s.dres.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.dres.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return dres, total, nil
}

// GetDRE returns one of the user's DRE calculations
func (s *CalculatorService) GetDRE(ctx context.Context, id, userID uuid.UUID) (*domain.DRECalculation, error) {
	return s.dres.GetByID(ctx, id, userID)
}

// CreatePricing computes and persists a pricing calculation
func (s *CalculatorService) CreatePricing(ctx context.Context, userID uuid.UUID, productName string, costPrice, desiredMargin float64, fees map[string]float64) (*domain.PricingCalculation, error) {
	if fees == nil {
		fees = map[string]float64{}
	}

	results, err := calc.Pricing(costPrice, desiredMargin, fees)
	if err != nil {
		return nil, err
	}

	pricing := &domain.PricingCalculation{
		ID:              uuid.New(),
		UserID:          userID,
		ProductName:     productName,
		CostPrice:       costPrice,
		DesiredMargin:   desiredMargin,
		MarketplaceFees: fees,
		CalculatedPrice: results.FinalPrice,
		CalculationData: *results,
		CreatedAt:       time.Now(),
	}

	if err := s.pricings.Create(ctx, pricing); err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Error saving pricing calculation")
		return nil, err
	}

	return pricing, nil
}

// ListPricings returns a page of the user's pricing calculations plus
// the total count
func (s *CalculatorService) ListPricings(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.PricingCalculation, int64, error) {
	pricings, err := s.pricings.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.pricings.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return pricings, total, nil
}

// GetPricing returns one of the user's pricing calculations
func (s *CalculatorService) GetPricing(ctx context.Context, id, userID uuid.UUID) (*domain.PricingCalculation, error) {
	return s.pricings.GetByID(ctx, id, userID)
}
