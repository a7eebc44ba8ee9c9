package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sellerhub/internal/domain"
)

// UserService handles profile, plan and account statistics
type UserService struct {
	users       domain.UserRepository
	dres        domain.DRERepository
	pricings    domain.PricingRepository
	connections domain.ConnectionRepository
	products    domain.ProductRepository
	researches  domain.ResearchRepository
	savedAds    domain.SavedAdRepository
}

// NewUserService creates a new UserService
func NewUserService(
	users domain.UserRepository,
	dres domain.DRERepository,
	pricings domain.PricingRepository,
	connections domain.ConnectionRepository,
	products domain.ProductRepository,
	researches domain.ResearchRepository,
	savedAds domain.SavedAdRepository,
) *UserService {
	return &UserService{
		users:       users,
		dres:        dres,
		pricings:    pricings,
		connections: connections,
		products:    products,
		researches:  researches,
		savedAds:    savedAds,
	}
}

// UpdateProfile updates the user's name and/or email. Empty fields keep
// their current value.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != "" && email != user.Email {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, domain.ErrEmailTaken
		}
		user.Email = email
	}
	if name != "" {
		user.Name = name
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()

	return user, nil
}

// UpdatePlan changes the user's subscription plan
func (s *UserService) UpdatePlan(ctx context.Context, userID uuid.UUID, plan domain.Plan) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdatePlan(ctx, userID, plan); err != nil {
		return nil, err
	}

	user.Plan = plan
	user.UpdatedAt = time.Now()
	return user, nil
}

// Stats returns the user's record counts across the product areas
func (s *UserService) Stats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	stats := &domain.UserStats{LastActivity: time.Now()}

	var err error
	if stats.DRECalculations, err = s.dres.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if stats.PricingCalculations, err = s.pricings.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if stats.StoreConnections, err = s.connections.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if stats.SyncedProducts, err = s.products.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if stats.MarketResearches, err = s.researches.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if stats.SavedAds, err = s.savedAds.CountByUser(ctx, userID); err != nil {
		return nil, err
	}

	return stats, nil
}

// Plans returns the public plan catalog
func (s *UserService) Plans() []domain.PlanInfo {
	return domain.PlanCatalog()
}
