package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"sellerhub/internal/domain"
)

// ConnectionService manages store connections and product sync
type ConnectionService struct {
	connections domain.ConnectionRepository
	products    domain.ProductRepository
	gateway     domain.StoreGateway
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(connections domain.ConnectionRepository, products domain.ProductRepository, gateway domain.StoreGateway) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		products:    products,
		gateway:     gateway,
	}
}

// Create validates the credentials through the store gateway and creates
// the connection. Only one active connection per store type is allowed.
func (s *ConnectionService) Create(ctx context.Context, userID uuid.UUID, storeType, storeName string, credentials map[string]string) (*domain.StoreConnection, error) {
	existing, err := s.connections.GetActiveByType(ctx, userID, storeType)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConnectionExists
	}

	valid, err := s.gateway.ValidateCredentials(ctx, storeType, credentials)
	if err != nil {
		logger.Error().Err(err).Str("store_type", storeType).Msg("Error validating store credentials")
		return nil, err
	}
	if !valid {
		return nil, domain.ErrInvalidStoreCredentials
	}

	now := time.Now()
	conn := &domain.StoreConnection{
		ID:             uuid.New(),
		UserID:         userID,
		StoreType:      storeType,
		StoreName:      storeName,
		APICredentials: credentials,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.connections.Create(ctx, conn); err != nil {
		return nil, err
	}

	return conn, nil
}

// List returns the user's connections matching the filter
func (s *ConnectionService) List(ctx context.Context, userID uuid.UUID, filter domain.ConnectionFilter) ([]*domain.StoreConnection, error) {
	return s.connections.ListByUser(ctx, userID, filter)
}

// Get returns one of the user's connections
func (s *ConnectionService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.StoreConnection, error) {
	return s.connections.GetByID(ctx, id, userID)
}

// Update modifies a connection's name, credentials and/or active flag.
// New credentials are validated through the gateway before being stored.
func (s *ConnectionService) Update(ctx context.Context, id, userID uuid.UUID, storeName *string, credentials map[string]string, isActive *bool) (*domain.StoreConnection, error) {
	conn, err := s.connections.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if storeName != nil {
		conn.StoreName = *storeName
	}
	if isActive != nil {
		// Re-activation must not produce a second active connection for
		// the same store type.
		if *isActive && !conn.IsActive {
			existing, err := s.connections.GetActiveByType(ctx, userID, conn.StoreType)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			if existing != nil && existing.ID != conn.ID {
				return nil, domain.ErrConnectionExists
			}
		}
		conn.IsActive = *isActive
	}
	if credentials != nil {
		valid, err := s.gateway.ValidateCredentials(ctx, conn.StoreType, credentials)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, domain.ErrInvalidStoreCredentials
		}
		conn.APICredentials = credentials
	}

	if err := s.connections.Update(ctx, conn); err != nil {
		return nil, err
	}
	conn.UpdatedAt = time.Now()

	return conn, nil
}

// Delete removes one of the user's connections
func (s *ConnectionService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.connections.Delete(ctx, id, userID)
}

// Sync pulls the store's catalog through the gateway and mirrors it into
// the local product table. Returns the number of products synced.
func (s *ConnectionService) Sync(ctx context.Context, id, userID uuid.UUID) (int, error) {
	conn, err := s.connections.GetByID(ctx, id, userID)
	if err != nil {
		return 0, err
	}
	if !conn.IsActive {
		return 0, domain.ErrNotFound
	}

	return s.syncConnection(ctx, conn)
}

// SyncStale re-syncs every active connection whose last sync is older
// than the cutoff. Used by the background scheduler; a failing
// connection is logged and skipped, not retried.
func (s *ConnectionService) SyncStale(ctx context.Context, staleAfter time.Duration) error {
	conns, err := s.connections.ListStale(ctx, time.Now().Add(-staleAfter))
	if err != nil {
		return err
	}

	for _, conn := range conns {
		if _, err := s.syncConnection(ctx, conn); err != nil {
			logger.Error().Err(err).
				Str("connection_id", conn.ID.String()).
				Str("store_type", conn.StoreType).
				Msg("Error syncing stale connection")
		}
	}

	return nil
}

func (s *ConnectionService) syncConnection(ctx context.Context, conn *domain.StoreConnection) (int, error) {
	storeProducts, err := s.gateway.FetchProducts(ctx, conn.StoreType, conn.APICredentials)
	if err != nil {
		return 0, err
	}

	for _, p := range storeProducts {
		product := &domain.SyncedProduct{
			ID:            uuid.New(),
			UserID:        conn.UserID,
			ConnectionID:  conn.ID,
			ExternalID:    p.ExternalID,
			Name:          p.Name,
			Price:         p.Price,
			StockQuantity: p.StockQuantity,
			Category:      p.Category,
			ProductData:   p.Data,
		}
		if err := s.products.Upsert(ctx, product); err != nil {
			return 0, err
		}
	}

	if err := s.connections.TouchLastSync(ctx, conn.ID); err != nil {
		return 0, err
	}

	logger.Info().
		Str("connection_id", conn.ID.String()).
		Str("store_type", conn.StoreType).
		Int("products", len(storeProducts)).
		Msg("Store sync completed")

	return len(storeProducts), nil
}

// Products returns a page of the user's synced products plus the total count
func (s *ConnectionService) Products(ctx context.Context, userID uuid.UUID, filter domain.ProductFilter, offset, limit int) ([]*domain.SyncedProduct, int64, error) {
	products, err := s.products.ListByUser(ctx, userID, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
