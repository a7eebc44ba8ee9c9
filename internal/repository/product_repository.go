package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"sellerhub/internal/domain"
)

// ProductRepositoryImpl implements the ProductRepository interface
type ProductRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *pgxpool.Pool) domain.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// Upsert inserts or refreshes a product keyed by (connection_id, external_id)
func (r *ProductRepositoryImpl) Upsert(ctx context.Context, product *domain.SyncedProduct) error {
	query := `
		INSERT INTO synced_products (
			id, user_id, connection_id, external_id, name, price, stock_quantity, category, product_data, last_updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
		ON CONFLICT (connection_id, external_id) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			stock_quantity = EXCLUDED.stock_quantity,
			category = EXCLUDED.category,
			product_data = EXCLUDED.product_data,
			last_updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.UserID,
		product.ConnectionID,
		product.ExternalID,
		product.Name,
		product.Price,
		product.StockQuantity,
		product.Category,
		product.ProductData,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert synced product: %w", err)
	}

	return nil
}

// ListByUser retrieves a page of the user's synced products, most
// recently updated first, optionally filtered by connection and category
func (r *ProductRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]*domain.SyncedProduct, error) {
	query := `
		SELECT id, user_id, connection_id, external_id, name, price, stock_quantity, category, product_data, last_updated_at
		FROM synced_products
		WHERE user_id = $1
		  AND ($2::uuid IS NULL OR connection_id = $2)
		  AND ($3 = '' OR category = $3)
		ORDER BY last_updated_at DESC
		OFFSET $4 LIMIT $5
	`

	rows, err := r.db.Query(ctx, query, userID, filter.ConnectionID, filter.Category, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query synced products: %w", err)
	}
	defer rows.Close()

	var products []*domain.SyncedProduct
	for rows.Next() {
		product := &domain.SyncedProduct{}
		err := rows.Scan(
			&product.ID,
			&product.UserID,
			&product.ConnectionID,
			&product.ExternalID,
			&product.Name,
			&product.Price,
			&product.StockQuantity,
			&product.Category,
			&product.ProductData,
			&product.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan synced product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating synced products: %w", err)
	}

	return products, nil
}

// CountByUser counts the user's synced products
func (r *ProductRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM synced_products WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count synced products: %w", err)
	}
	return count, nil
}
