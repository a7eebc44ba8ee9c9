package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sellerhub/internal/domain"
)

// SavedAdService manages saved calculator snapshots
type SavedAdService struct {
	savedAds domain.SavedAdRepository
}

// NewSavedAdService creates a new SavedAdService
func NewSavedAdService(savedAds domain.SavedAdRepository) *SavedAdService {
	return &SavedAdService{
		savedAds: savedAds,
	}
}

// Create persists a new saved ad
func (s *SavedAdService) Create(ctx context.Context, userID uuid.UUID, name, calculatorType string, calcData map[string]any, photoURL, comment *string, tags []string) (*domain.SavedAd, error) {
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	ad := &domain.SavedAd{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		CalculatorType: calculatorType,
		CalcData:       calcData,
		PhotoURL:       photoURL,
		Comment:        comment,
		Tags:           tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.savedAds.Create(ctx, ad); err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Error saving ad")
		return nil, err
	}

	return ad, nil
}

// List returns all of the user's saved ads, newest first
func (s *SavedAdService) List(ctx context.Context, userID uuid.UUID) ([]*domain.SavedAd, error) {
	return s.savedAds.ListByUser(ctx, userID)
}

// Get returns one of the user's saved ads
func (s *SavedAdService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.SavedAd, error) {
	return s.savedAds.GetByID(ctx, id, userID)
}

// Update modifies a saved ad. Nil fields keep their current value; the
// calculator type is fixed at creation.
func (s *SavedAdService) Update(ctx context.Context, id, userID uuid.UUID, name *string, calcData map[string]any, photoURL, comment *string, tags []string) (*domain.SavedAd, error) {
	ad, err := s.savedAds.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		ad.Name = *name
	}
	if calcData != nil {
		ad.CalcData = calcData
	}
	if photoURL != nil {
		ad.PhotoURL = photoURL
	}
	if comment != nil {
		ad.Comment = comment
	}
	if tags != nil {
		ad.Tags = tags
	}

	if err := s.savedAds.Update(ctx, ad); err != nil {
		return nil, err
	}
	ad.UpdatedAt = time.Now()

	return ad, nil
}

// Delete removes one of the user's saved ads
func (s *SavedAdService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.savedAds.Delete(ctx, id, userID)
}
