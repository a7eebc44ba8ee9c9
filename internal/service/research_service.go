package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerhub/internal/domain"
)

// ResearchService manages market research records and trend reports
type ResearchService struct {
	researches domain.ResearchRepository
	provider   domain.MarketDataProvider
}

// NewResearchService creates a new ResearchService
func NewResearchService(researches domain.ResearchRepository, provider domain.MarketDataProvider) *ResearchService {
	return &ResearchService{
		researches: researches,
		provider:   provider,
	}
}

// Create runs a market research through the provider and persists the
// result
func (s *ResearchService) Create(ctx context.Context, userID uuid.UUID, productName, category string, searchData map[string]any) (*domain.MarketResearch, error) {
	insight, err := s.provider.Research(ctx, productName, category, searchData)
	if err != nil {
		logger.Error().Err(err).Str("product_name", productName).Msg("Error fetching market insight")
		return nil, err
	}

	now := time.Now()
	research := &domain.MarketResearch{
		ID:          uuid.New(),
		UserID:      userID,
		ProductName: productName,
		Category:    category,
		SearchData:  searchData,
		Results:     *insight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.researches.Create(ctx, research); err != nil {
		return nil, err
	}

	return research, nil
}

// List returns a page of the user's researches plus the total count
func (s *ResearchService) List(ctx context.Context, userID uuid.UUID, category string, offset, limit int) ([]*domain.MarketResearch, int64, error) {
	researches, err := s.researches.ListByUser(ctx, userID, category, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.researches.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return researches, total, nil
}

// Get returns one of the user's researches
func (s *ResearchService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.MarketResearch, error) {
	return s.researches.GetByID(ctx, id, userID)
}

// Update modifies a research's product name, category and search data.
// The stored insight is kept; re-running the analysis means creating a
// new research.
func (s *ResearchService) Update(ctx context.Context, id, userID uuid.UUID, productName, category string, searchData map[string]any) (*domain.MarketResearch, error) {
	research, err := s.researches.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	research.ProductName = productName
	research.Category = category
	research.SearchData = searchData

	if err := s.researches.Update(ctx, research); err != nil {
		return nil, err
	}
	research.UpdatedAt = time.Now()

	return research, nil
}

// Delete removes one of the user's researches
func (s *ResearchService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.researches.Delete(ctx, id, userID)
}

// Trends fetches a market-wide trend report for a category and period
func (s *ResearchService) Trends(ctx context.Context, category, period string) (*domain.TrendReport, error) {
	if period == "" {
		period = "30d"
	}
	return s.provider.Trends(ctx, category, period)
}
