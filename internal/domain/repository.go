package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile updates name and email
	UpdateProfile(ctx context.Context, user *User) error

	// UpdatePlan updates the subscription plan
	UpdatePlan(ctx context.Context, id uuid.UUID, plan Plan) error

	// SetActive flips the account-active flag
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// DRERepository defines the interface for persisted DRE calculations
type DRERepository interface {
	Create(ctx context.Context, dre *DRECalculation) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*DRECalculation, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*DRECalculation, error)
}

// PricingRepository defines the interface for persisted pricing calculations
type PricingRepository interface {
	Create(ctx context.Context, pricing *PricingCalculation) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*PricingCalculation, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*PricingCalculation, error)
}

// ConnectionRepository defines the interface for store connections
type ConnectionRepository interface {
	Create(ctx context.Context, conn *StoreConnection) error
	ListByUser(ctx context.Context, userID uuid.UUID, filter ConnectionFilter) ([]*StoreConnection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*StoreConnection, error)

	// GetActiveByType finds the user's active connection for a store type
	GetActiveByType(ctx context.Context, userID uuid.UUID, storeType string) (*StoreConnection, error)

	Update(ctx context.Context, conn *StoreConnection) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// TouchLastSync stamps last_sync_at with the current time
	TouchLastSync(ctx context.Context, id uuid.UUID) error

	// ListStale returns active connections not synced since the cutoff
	ListStale(ctx context.Context, cutoff time.Time) ([]*StoreConnection, error)
}

// ProductRepository defines the interface for synced products
type ProductRepository interface {
	// Upsert inserts or refreshes a product keyed by (connection_id, external_id)
	Upsert(ctx context.Context, product *SyncedProduct) error

	ListByUser(ctx context.Context, userID uuid.UUID, filter ProductFilter, offset, limit int) ([]*SyncedProduct, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ResearchRepository defines the interface for market research records
type ResearchRepository interface {
	Create(ctx context.Context, research *MarketResearch) error
	ListByUser(ctx context.Context, userID uuid.UUID, category string, offset, limit int) ([]*MarketResearch, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*MarketResearch, error)
	Update(ctx context.Context, research *MarketResearch) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// SavedAdRepository defines the interface for saved ads
type SavedAdRepository interface {
	Create(ctx context.Context, ad *SavedAd) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*SavedAd, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*SavedAd, error)
	Update(ctx context.Context, ad *SavedAd) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
