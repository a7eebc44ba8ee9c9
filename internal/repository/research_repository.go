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

// ResearchRepositoryImpl implements the ResearchRepository interface
type ResearchRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewResearchRepository creates a new ResearchRepository
func NewResearchRepository(db *pgxpool.Pool) domain.ResearchRepository {
	return &ResearchRepositoryImpl{db: db}
}

// Create creates a new market research record
func (r *ResearchRepositoryImpl) Create(ctx context.Context, research *domain.MarketResearch) error {
	query := `
		INSERT INTO market_research (
			id, user_id, product_name, category, search_data, results, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		research.ID,
		research.UserID,
		research.ProductName,
		research.Category,
		research.SearchData,
		research.Results,
		research.CreatedAt,
		research.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create market research: %w", err)
	}

	return nil
}

// ListByUser retrieves a page of the user's researches, newest first,
// optionally filtered by category
func (r *ResearchRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, category string, offset, limit int) ([]*domain.MarketResearch, error) {
	query := `
		SELECT id, user_id, product_name, category, search_data, results, created_at, updated_at
		FROM market_research
		WHERE user_id = $1
		  AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`

	rows, err := r.db.Query(ctx, query, userID, category, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query market researches: %w", err)
	}
	defer rows.Close()

	var researches []*domain.MarketResearch
	for rows.Next() {
		research := &domain.MarketResearch{}
		err := rows.Scan(
			&research.ID,
			&research.UserID,
			&research.ProductName,
			&research.Category,
			&research.SearchData,
			&research.Results,
			&research.CreatedAt,
			&research.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market research: %w", err)
		}
		researches = append(researches, research)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating market researches: %w", err)
	}

	return researches, nil
}

// CountByUser counts the user's researches
func (r *ResearchRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM market_research WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count market researches: %w", err)
	}
	return count, nil
}

// GetByID retrieves one of the user's researches by ID
func (r *ResearchRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.MarketResearch, error) {
	query := `
		SELECT id, user_id, product_name, category, search_data, results, created_at, updated_at
		FROM market_research
		WHERE id = $1 AND user_id = $2
	`

	research := &domain.MarketResearch{}
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&research.ID,
		&research.UserID,
		&research.ProductName,
		&research.Category,
		&research.SearchData,
		&research.Results,
		&research.CreatedAt,
		&research.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get market research: %w", err)
	}

	return research, nil
}

// Update updates a research's product name, category and search data
func (r *ResearchRepositoryImpl) Update(ctx context.Context, research *domain.MarketResearch) error {
	query := `
		UPDATE market_research
		SET product_name = $1, category = $2, search_data = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		research.ProductName,
		research.Category,
		research.SearchData,
		research.ID,
		research.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update market research: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes one of the user's researches
func (r *ResearchRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM market_research WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete market research: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
