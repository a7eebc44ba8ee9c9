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

// DRERepositoryImpl implements the DRERepository interface
type DRERepositoryImpl struct {
	db *pgxpool.Pool
}

// NewDRERepository creates a new DRERepository
func NewDRERepository(db *pgxpool.Pool) domain.DRERepository {
	return &DRERepositoryImpl{db: db}
}

// Create creates a new DRE calculation
func (r *DRERepositoryImpl) Create(ctx context.Context, dre *domain.DRECalculation) error {
	query := `
		INSERT INTO dre_calculations (
			id, user_id, name, period_start, period_end, revenue, costs, expenses, results, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.Exec(ctx, query,
		dre.ID,
		dre.UserID,
		dre.Name,
		dre.PeriodStart,
		dre.PeriodEnd,
		dre.Revenue,
		dre.Costs,
		dre.Expenses,
		dre.Results,
		dre.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create DRE calculation: %w", err)
	}

	return nil
}

// ListByUser retrieves a page of the user's DRE calculations, newest first
func (r *DRERepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*domain.DRECalculation, error) {
	query := `
		SELECT id, user_id, name, period_start, period_end, revenue, costs, expenses, results, created_at
		FROM dre_calculations
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query DRE calculations: %w", err)
	}
	defer rows.Close()

	var dres []*domain.DRECalculation
	for rows.Next() {
		dre := &domain.DRECalculation{}
		err := rows.Scan(
			&dre.ID,
			&dre.UserID,
			&dre.Name,
			&dre.PeriodStart,
			&dre.PeriodEnd,
			&dre.Revenue,
			&dre.Costs,
			&dre.Expenses,
			&dre.Results,
			&dre.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan DRE calculation: %w", err)
		}
		dres = append(dres, dre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating DRE calculations: %w", err)
	}

	return dres, nil
}

// CountByUser counts the user's DRE calculations
func (r *DRERepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dre_calculations WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count DRE calculations: %w", err)
	}
	return count, nil
}

// GetByID retrieves one of the user's DRE calculations by ID
func (r *DRERepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.DRECalculation, error) {
	query := `
		SELECT id, user_id, name, period_start, period_end, revenue, costs, expenses, results, created_at
		FROM dre_calculations
		WHERE id = $1 AND user_id = $2
	`

	dre := &domain.DRECalculation{}
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&dre.ID,
		&dre.UserID,
		&dre.Name,
		&dre.PeriodStart,
		&dre.PeriodEnd,
		&dre.Revenue,
		&dre.Costs,
		&dre.Expenses,
		&dre.Results,
		&dre.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get DRE calculation: %w", err)
	}

	return dre, nil
}
