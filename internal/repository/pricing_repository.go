package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sellerhub/internal/domain"
)

// PricingRepositoryImpl implements the PricingRepository interface
type PricingRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPricingRepository creates a new PricingRepository
func NewPricingRepository(db *pgxpool.Pool) domain.PricingRepository {
	return &PricingRepositoryImpl{db: db}
}

// Create creates a new pricing calculation
func (r *PricingRepositoryImpl) Create(ctx context.Context, pricing *domain.PricingCalculation) error {
	query := `
		INSERT INTO pricing_calculations (
			id, user_id, product_name, cost_price, desired_margin,
			marketplace_fees, calculated_price, calculation_data, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.Exec(ctx, query,
		pricing.ID,
		pricing.UserID,
		pricing.ProductName,
		pricing.CostPrice,
		pricing.DesiredMargin,
		pricing.MarketplaceFees,
		pricing.CalculatedPrice,
		pricing.CalculationData,
		pricing.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create pricing calculation: %w", err)
	}

	return nil
}

// ListByUser retrieves a page of the user's pricing calculations, newest first
func (r *PricingRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.PricingCalculation, error) {
	query := `
		SELECT id, user_id, product_name, cost_price, desired_margin,
		       marketplace_fees, calculated_price, calculation_data, created_at
		FROM pricing_calculations
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing calculations: %w", err)
	}
	defer rows.Close()

	var pricings []*domain.PricingCalculation
	for rows.Next() {
		pricing := &domain.PricingCalculation{}
		err := rows.Scan(
			&pricing.ID,
			&pricing.UserID,
			&pricing.ProductName,
			&pricing.CostPrice,
			&pricing.DesiredMargin,
			&pricing.MarketplaceFees,
			&pricing.CalculatedPrice,
			&pricing.CalculationData,
			&pricing.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing calculation: %w", err)
		}
		pricings = append(pricings, pricing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pricing calculations: %w", err)
	}

	return pricings, nil
}

// CountByUser counts the user's pricing calculations
func (r *PricingRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM pricing_calculations WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pricing calculations: %w", err)
	}
	return count, nil
}

// GetByID retrieves one of the user's pricing calculations by ID
func (r *PricingRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.PricingCalculation, error) {
	query := `
		SELECT id, user_id, product_name, cost_price, desired_margin,
		       marketplace_fees, calculated_price, calculation_data, created_at
		FROM pricing_calculations
		WHERE id = $1 AND user_id = $2
	`

	pricing := &domain.PricingCalculation{}
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&pricing.ID,
		&pricing.UserID,
		&pricing.ProductName,
		&pricing.CostPrice,
		&pricing.DesiredMargin,
		&pricing.MarketplaceFees,
		&pricing.CalculatedPrice,
		&pricing.CalculationData,
		&pricing.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pricing calculation: %w", err)
	}

	return pricing, nil
}
