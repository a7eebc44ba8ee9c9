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

// SavedAdRepositoryImpl implements the SavedAdRepository interface
type SavedAdRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSavedAdRepository creates a new SavedAdRepository
func NewSavedAdRepository(db *pgxpool.Pool) domain.SavedAdRepository {
	return &SavedAdRepositoryImpl{db: db}
}

// Create creates a new saved ad
func (r *SavedAdRepositoryImpl) Create(ctx context.Context, ad *domain.SavedAd) error {
	query := `
		INSERT INTO saved_ads (
			id, user_id, name, calculator_type, calc_data, photo_url, comment, tags, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.Exec(ctx, query,
		ad.ID,
		ad.UserID,
		ad.Name,
		ad.CalculatorType,
		ad.CalcData,
		ad.PhotoURL,
		ad.Comment,
		ad.Tags,
		ad.CreatedAt,
		ad.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create saved ad: %w", err)
	}

	return nil
}

// ListByUser retrieves all of the user's saved ads, newest first
func (r *SavedAdRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedAd, error) {
	query := `
		SELECT id, user_id, name, calculator_type, calc_data, photo_url, comment, tags, created_at, updated_at
		FROM saved_ads
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved ads: %w", err)
	}
	defer rows.Close()

	var ads []*domain.SavedAd
	for rows.Next() {
		ad := &domain.SavedAd{}
		err := rows.Scan(
			&ad.ID,
			&ad.UserID,
			&ad.Name,
			&ad.CalculatorType,
			&ad.CalcData,
			&ad.PhotoURL,
			&ad.Comment,
			&ad.Tags,
			&ad.CreatedAt,
			&ad.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating saved ads: %w", err)
	}

	return ads, nil
}

// CountByUser counts the user's saved ads
func (r *SavedAdRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_ads WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count saved ads: %w", err)
	}
	return count, nil
}

// GetByID retrieves one of the user's saved ads by ID
func (r *SavedAdRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.SavedAd, error) {
	query := `
		SELECT id, user_id, name, calculator_type, calc_data, photo_url, comment, tags, created_at, updated_at
		FROM saved_ads
		WHERE id = $1 AND user_id = $2
	`

	ad := &domain.SavedAd{}
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&ad.ID,
		&ad.UserID,
		&ad.Name,
		&ad.CalculatorType,
		&ad.CalcData,
		&ad.PhotoURL,
		&ad.Comment,
		&ad.Tags,
		&ad.CreatedAt,
		&ad.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get saved ad: %w", err)
	}

	return ad, nil
}

// Update updates a saved ad's mutable fields
func (r *SavedAdRepositoryImpl) Update(ctx context.Context, ad *domain.SavedAd) error {
	query := `
		UPDATE saved_ads
		SET name = $1, calc_data = $2, photo_url = $3, comment = $4, tags = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
	`

	tag, err := r.db.Exec(ctx, query,
		ad.Name,
		ad.CalcData,
		ad.PhotoURL,
		ad.Comment,
		ad.Tags,
		ad.ID,
		ad.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update saved ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes one of the user's saved ads
func (r *SavedAdRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_ads WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete saved ad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
