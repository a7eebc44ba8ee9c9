package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sellerhub/internal/domain"
)

// ConnectionRepositoryImpl implements the ConnectionRepository interface
type ConnectionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *pgxpool.Pool) domain.ConnectionRepository {
	return &ConnectionRepositoryImpl{db: db}
}

const connectionColumns = `id, user_id, store_type, store_name, api_credentials, is_active, last_sync_at, created_at, updated_at`

func scanConnection(row pgx.Row) (*domain.StoreConnection, error) {
	conn := &domain.StoreConnection{}
	err := row.Scan(
		&conn.ID,
		&conn.UserID,
		&conn.StoreType,
		&conn.StoreName,
		&conn.APICredentials,
		&conn.IsActive,
		&conn.LastSyncAt,
		&conn.CreatedAt,
		&conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Create creates a new store connection
func (r *ConnectionRepositoryImpl) Create(ctx context.Context, conn *domain.StoreConnection) error {
	query := `
		INSERT INTO store_connections (
			id, user_id, store_type, store_name, api_credentials, is_active, last_sync_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err := r.db.Exec(ctx, query,
		conn.ID,
		conn.UserID,
		conn.StoreType,
		conn.StoreName,
		conn.APICredentials,
		conn.IsActive,
		conn.LastSyncAt,
		conn.CreatedAt,
		conn.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create store connection: %w", err)
	}

	return nil
}

// ListByUser retrieves the user's connections, newest first, optionally
// filtered by store type and active flag
func (r *ConnectionRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, filter domain.ConnectionFilter) ([]*domain.StoreConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM store_connections
		WHERE user_id = $1
		  AND ($2 = '' OR store_type = $2)
		  AND ($3::boolean IS NULL OR is_active = $3)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, filter.StoreType, filter.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query store connections: %w", err)
	}
	defer rows.Close()

	var conns []*domain.StoreConnection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store connection: %w", err)
		}
		conns = append(conns, conn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store connections: %w", err)
	}

	return conns, nil
}

// CountByUser counts the user's store connections
func (r *ConnectionRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM store_connections WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count store connections: %w", err)
	}
	return count, nil
}

// GetByID retrieves one of the user's connections by ID
func (r *ConnectionRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.StoreConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM store_connections
		WHERE id = $1 AND user_id = $2
	`

	conn, err := scanConnection(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get store connection: %w", err)
	}

	return conn, nil
}

// GetActiveByType finds the user's active connection for a store type
func (r *ConnectionRepositoryImpl) GetActiveByType(ctx context.Context, userID uuid.UUID, storeType string) (*domain.StoreConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM store_connections
		WHERE user_id = $1 AND store_type = $2 AND is_active = TRUE
	`

	conn, err := scanConnection(r.db.QueryRow(ctx, query, userID, storeType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active store connection: %w", err)
	}

	return conn, nil
}

// Update updates a connection's mutable fields
func (r *ConnectionRepositoryImpl) Update(ctx context.Context, conn *domain.StoreConnection) error {
	query := `
		UPDATE store_connections
		SET store_name = $1, api_credentials = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		conn.StoreName,
		conn.APICredentials,
		conn.IsActive,
		conn.ID,
		conn.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update store connection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes one of the user's connections
func (r *ConnectionRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM store_connections WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete store connection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// TouchLastSync stamps last_sync_at with the current time
func (r *ConnectionRepositoryImpl) TouchLastSync(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE store_connections SET last_sync_at = NOW(), updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update last sync timestamp: %w", err)
	}
	return nil
}

// ListStale returns active connections not synced since the cutoff
func (r *ConnectionRepositoryImpl) ListStale(ctx context.Context, cutoff time.Time) ([]*domain.StoreConnection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM store_connections
		WHERE is_active = TRUE AND (last_sync_at IS NULL OR last_sync_at < $1)
		ORDER BY last_sync_at ASC NULLS FIRST
	`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale connections: %w", err)
	}
	defer rows.Close()

	var conns []*domain.StoreConnection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stale connection: %w", err)
		}
		conns = append(conns, conn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stale connections: %w", err)
	}

	return conns, nil
}
